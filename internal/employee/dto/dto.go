package dto

type EmployeeFilters struct {
	Search     string
	Department string
	Page       int
	PageSize   int
}
