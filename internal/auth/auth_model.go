package auth

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64" example:"arjun_k"`
	Email    string `json:"email" binding:"required,email" example:"arjun@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Name     string `json:"name" binding:"omitempty,max=128" example:"Arjun Kapoor"`
}

type LoginRequest struct {
	LoginIdentifier string `json:"login_identifier" binding:"required" example:"arjun@example.com"` // Can be email or username
	Password        string `json:"password" binding:"required" example:"password123"`
}

type UserResponse struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
