package request

import "portfolio/internal/domain/models"

type RoleRequest struct {
	Role string `json:"role" form:"role" validate:"required"`
}

type ContactRequest struct {
	Title   string `json:"title" form:"title" validate:"max=200"`
	Name    string `json:"name" form:"name" validate:"required,max=200"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=40"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

func (r ContactRequest) ToModel() models.ContactMessage {
	return models.ContactMessage{
		Title:   r.Title,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

type PreloadRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,max=200,dive,required"`
}
