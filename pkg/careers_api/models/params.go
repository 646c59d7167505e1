package models

type ListApplicationsParams struct {
	Page    int     `query:"page"`
	PerPage int     `query:"perPage"`
	Status  *string `query:"status"`
}

type ApplicationParams struct {
	Id uint `path:"id" validate:"required"`
}

// UpdateStatusInput merges the path id with the admin's mutation body.
type UpdateStatusInput struct {
	Id     uint    `path:"id"`
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}
