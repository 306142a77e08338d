package customer

// Create and update requests arrive as multipart/form-data because of the
// optional photo file; these structs carry the scalar form fields.
type (
	CreateRequest struct {
		Name     string `form:"name"`
		Surname  string `form:"surname"`
		Email    string `form:"email"`
		Password string `form:"password"`
		Phone    string `form:"phone"`
		Type     string `form:"type"`
	}
	UpdateRequest struct {
		Name    string `form:"name"`
		Surname string `form:"surname"`
		Email   string `form:"email"`
		Phone   string `form:"phone"`
	}
)
