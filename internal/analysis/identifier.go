package analysis

import "strings"

// IsIdentifier decides whether a numeric column is an identifier and
// should be excluded from statistical and outlier analysis. Two signals,
// combined with OR:
//
//   - the column name contains an ID-ish keyword (substring containment,
//     so "paid" and "valid" do match — kept to preserve which columns
//     reach the reports);
//   - nearly all non-null values are distinct AND the column covers most
//     rows.
//
// nums are the coerced numeric values of the column within one table;
// rowCount is the table's total row count. Identifier detection is never
// cross-table.
func IsIdentifier(name string, nums []float64, rowCount int, opt Options) bool {
	lname := strings.ToLower(strings.TrimSpace(name))
	for _, kw := range opt.IDKeywords {
		if strings.Contains(lname, kw) {
			return true
		}
	}

	if len(nums) == 0 || rowCount == 0 {
		return false
	}
	distinct := make(map[float64]struct{}, len(nums))
	for _, v := range nums {
		distinct[v] = struct{}{}
	}
	uniqueRatio := float64(len(distinct)) / float64(len(nums))
	coverage := float64(len(nums)) / float64(rowCount)
	return uniqueRatio >= opt.IDUniqueRatio && coverage >= opt.IDCoverageRatio
}
