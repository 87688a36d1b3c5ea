package user

type CreateUserInput struct {
	Username    string  `json:"username" form:"username" binding:"required,min=3,max=50"`
	Password    string  `json:"password" form:"password" binding:"required,min=8,max=72"`
	Email       *string `json:"email" form:"email" binding:"omitempty,email"`
	AccountType string  `json:"account_type" form:"account_type" binding:"required,oneof=client developer"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
