package request

// ByIDRequest is a common struct for endpoints addressed by a numeric ID path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// ByKeyRequest is used by endpoints whose ID is an opaque string (wizards, bookings).
type ByKeyRequest struct {
	ID string `uri:"id" binding:"required"`
}

// ListParams holds the common pagination query parameters.
type ListParams struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}
