package models

import "time"

type Post struct {
	ID             string    `db:"id" json:"id"`
	Category       string    `db:"category" json:"category"`
	Title          string    `db:"title" json:"title"`
	Subtitle       *string   `db:"subtitle" json:"subtitle,omitempty"`
	Description    string    `db:"description" json:"description"`
	Image          string    `db:"image" json:"image"`
	Author         string    `db:"author" json:"author"`
	AuthorAvatar   *string   `db:"author_avatar" json:"authorAvatar,omitempty"`
	Location       string    `db:"location" json:"location"`
	Price          *int      `db:"price" json:"price,omitempty"`
	PriceLabel     *string   `db:"price_label" json:"priceLabel,omitempty"`
	Rating         *float64  `db:"rating" json:"rating,omitempty"`
	RatingCount    *int      `db:"rating_count" json:"ratingCount,omitempty"`
	Tags           []string  `db:"tags" json:"tags"`
	Urgent         bool      `db:"urgent" json:"urgent"`
	Date           time.Time `db:"date" json:"date"`
	Payment        []string  `db:"payment" json:"payment"`
	BarterAccepted bool      `db:"barter_accepted" json:"barterAccepted"`
	Status         string    `db:"status" json:"status"` // pending, approved, rejected

	// eventos
	StartDate *time.Time `db:"start_date" json:"startDate,omitempty"`
	EndDate   *time.Time `db:"end_date" json:"endDate,omitempty"`
	Venue     *string    `db:"venue" json:"venue,omitempty"`
	Mode      *string    `db:"mode" json:"mode,omitempty"`
	Capacity  *int       `db:"capacity" json:"capacity,omitempty"`
	Organizer *string    `db:"organizer" json:"organizer,omitempty"`

	// servicios
	ExperienceYears *int    `db:"experience_years" json:"experienceYears,omitempty"`
	Availability    *string `db:"availability" json:"availability,omitempty"`
	ServiceArea     *string `db:"service_area" json:"serviceArea,omitempty"`

	// productos / usados
	Condition *string `db:"condition" json:"condition,omitempty"`
	Stock     *int    `db:"stock" json:"stock,omitempty"`
	Warranty  *string `db:"warranty" json:"warranty,omitempty"`
	UsageTime *string `db:"usage_time" json:"usageTime,omitempty"`

	// cursos
	Duration *string `db:"duration" json:"duration,omitempty"`
	Schedule *string `db:"schedule" json:"schedule,omitempty"`
	Level    *string `db:"level" json:"level,omitempty"`

	// pedidos
	NeededBy    *string `db:"needed_by" json:"neededBy,omitempty"`
	BudgetRange *string `db:"budget_range" json:"budgetRange,omitempty"`

	Socials []SocialLink `json:"socials"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type SocialLink struct {
	ID     int64  `db:"id" json:"-"`
	PostID string `db:"post_id" json:"-"`
	Name   string `db:"name" json:"name"`
	URL    string `db:"url" json:"url"`
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	CategoryEventos   = "eventos"
	CategoryServicios = "servicios"
	CategoryProductos = "productos"
	CategoryUsados    = "usados"
	CategoryCursos    = "cursos"
	CategoryPedidos   = "pedidos"
)

var Categories = []string{
	CategoryEventos,
	CategoryServicios,
	CategoryProductos,
	CategoryUsados,
	CategoryCursos,
	CategoryPedidos,
}

var PaymentMethods = []string{"cash", "debit", "credit", "transfer", "mercadopago", "crypto", "barter", "all"}

var Statuses = []string{StatusPending, StatusApproved, StatusRejected}

var Modes = []string{"presencial", "online", "híbrido"}

var ProductConditions = []string{"nuevo", "reacondicionado"}

// AllConditions includes the fixed "usado" value that only second-hand
// listings carry.
var AllConditions = []string{"nuevo", "reacondicionado", "usado"}

var CourseLevels = []string{"principiante", "intermedio", "avanzado"}
