package dto

// BookingDTO 预约表单
type BookingDTO struct {
	Name    string `form:"name" binding:"required" validate:"max=100"`
	Phone   string `form:"phone" binding:"required" validate:"max=30"`
	Date    string `form:"date" validate:"max=50"`
	Message string `form:"message" validate:"max=2000"`
}
