package pagination

import "gorm.io/gorm"

// Count fills numItems with the distinct row count of the base query, using a
// cloned session so the caller's query keeps its limit/offset untouched.
func Count(numItems *int64, query *gorm.DB, session *gorm.Session, distinct string) error {
	sql := query.
		Session(session).
		Distinct(distinct)

	if err := sql.Count(numItems).Error; err != nil {
		return err
	}

	return nil
}
