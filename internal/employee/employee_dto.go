package employee

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"omitempty,min=8,max=20"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
	JoinDate   string `json:"join_date" binding:"required,datetime=2006-01-02"`
}

type UpdateEmployeeRequest struct {
	Name       string `json:"name" binding:"omitempty"`
	Phone      string `json:"phone" binding:"omitempty,min=8,max=20"`
	Position   string `json:"position" binding:"omitempty"`
	Department string `json:"department" binding:"omitempty"`
	Status     string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	JoinDate       string `json:"join_date"`
	Status         string `json:"status"`
}

type EmployeeOption struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
}

type ListEmployeesQuery struct {
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Search string `form:"search" binding:"omitempty,max=100"`
}
