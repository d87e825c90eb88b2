package apidocs

// Types in this package only describe the JSON API for swagger; handlers
// encode the application types directly.

// HealthResponse is the shape of /health success.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Views  int    `json:"views" example:"3"`
}

// UserResponse is one table row.
type UserResponse struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"George"`
	LastName  string `json:"last_name" example:"Bluth"`
	Email     string `json:"email" example:"george.bluth@reqres.in"`
	Avatar    string `json:"avatar" example:"https://reqres.in/img/faces/1-image.jpg"`
}

type SortResponse struct {
	Key       string `json:"key" example:"id" enums:"id,first_name,last_name,email"`
	Direction string `json:"direction" example:"ascending" enums:"ascending,descending"`
}

type ColumnResponse struct {
	Key       string `json:"key" example:"first_name"`
	Label     string `json:"label" example:"First Name"`
	Active    bool   `json:"active" example:"true"`
	Indicator string `json:"indicator,omitempty" example:"▲"`
}

// ViewResponse is a view snapshot.
type ViewResponse struct {
	ID         string           `json:"id" example:"5f0c3a52-6f8e-4a34-9a53-3c6c1f0bf7c1"`
	Loading    bool             `json:"loading" example:"false"`
	Search     string           `json:"search" example:""`
	Sort       SortResponse     `json:"sort"`
	Page       int              `json:"page" example:"1"`
	PageSize   int              `json:"pageSize" example:"2"`
	TotalPages int              `json:"totalPages" example:"3"`
	TotalUsers int              `json:"totalUsers" example:"6"`
	HasPrev    bool             `json:"hasPrev" example:"false"`
	HasNext    bool             `json:"hasNext" example:"true"`
	Columns    []ColumnResponse `json:"columns"`
	Users      []UserResponse   `json:"users"`
}

type SearchRequest struct {
	Term string `json:"term" example:"janet" maxLength:"200"`
}

type SortRequest struct {
	Key string `json:"key" example:"last_name" enums:"id,first_name,last_name,email"`
}

// ErrorResponse matches responses.WriteError.
type ErrorResponse struct {
	Error string `json:"error" example:"view not found"`
}
