package transfer

import "github.com/ZBrian99/inclusiva-api/internal/models"

// PostInput is the raw creation/update payload. Pointer fields distinguish
// "absent" from zero values so updates only touch what the client sent.
type PostInput struct {
	Category       string            `json:"category"`
	Title          *string           `json:"title"`
	Subtitle       *string           `json:"subtitle"`
	Description    *string           `json:"description"`
	Image          *string           `json:"image"`
	Author         *string           `json:"author"`
	AuthorAvatar   *string           `json:"authorAvatar"`
	Location       *string           `json:"location"`
	Price          *int              `json:"price"`
	PriceLabel     *string           `json:"priceLabel"`
	Rating         *float64          `json:"rating"`
	RatingCount    *int              `json:"ratingCount"`
	Tags           []string          `json:"tags"`
	Urgent         *bool             `json:"urgent"`
	Date           *string           `json:"date"`
	Contact        map[string]string `json:"contact"`
	Socials        []SocialLinkInput `json:"socials"`
	Payment        []string          `json:"payment"`
	BarterAccepted *bool             `json:"barterAccepted"`
	Status         *string           `json:"status"`

	// eventos
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Venue     *string `json:"venue"`
	Mode      *string `json:"mode"`
	Capacity  *int    `json:"capacity"`
	Organizer *string `json:"organizer"`

	// servicios
	ExperienceYears *int    `json:"experienceYears"`
	Availability    *string `json:"availability"`
	ServiceArea     *string `json:"serviceArea"`

	// productos / usados
	Condition *string `json:"condition"`
	Stock     *int    `json:"stock"`
	Warranty  *string `json:"warranty"`
	UsageTime *string `json:"usageTime"`

	// cursos
	Duration *string `json:"duration"`
	Schedule *string `json:"schedule"`
	Level    *string `json:"level"`

	// pedidos
	NeededBy    *string `json:"neededBy"`
	BudgetRange *string `json:"budgetRange"`
}

type SocialLinkInput struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type LoginRequest struct {
	Username string `json:"username"`
	User     string `json:"user"`
	Password string `json:"password"`
	Pass     string `json:"pass"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int    `json:"expiresIn"`
}

type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type ListResponse struct {
	Data       []*models.Post `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type DetailResponse struct {
	Data *models.Post `json:"data"`
}
