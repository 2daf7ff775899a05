package content

import "time"

// SocialLinks appears on the site settings and on team members.
type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

// SiteSettings is a singleton document.
type SiteSettings struct {
	ID             string      `bson:"_id,omitempty" json:"id,omitempty"`
	SiteName       string      `bson:"site_name" json:"siteName"`
	Tagline        string      `bson:"tagline" json:"tagline"`
	Logo           string      `bson:"logo" json:"logo"`
	LogoLight      string      `bson:"logo_light" json:"logoLight"`
	Favicon        string      `bson:"favicon" json:"favicon"`
	OpenHours      string      `bson:"open_hours" json:"openHours"`
	Phone          string      `bson:"phone" json:"phone"`
	AlternatePhone string      `bson:"alternate_phone" json:"alternatePhone"`
	Email          string      `bson:"email" json:"email"`
	Whatsapp       string      `bson:"whatsapp" json:"whatsapp"`
	Address        string      `bson:"address" json:"address"`
	MapEmbedURL    string      `bson:"map_embed_url" json:"mapEmbedUrl"`
	SocialLinks    SocialLinks `bson:"social_links" json:"socialLinks"`
	Copyright      string      `bson:"copyright" json:"copyright"`
	UpdatedAt      time.Time   `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// About is a singleton document backing the about sections.
type About struct {
	ID              string   `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string   `bson:"title" json:"title"`
	Subtitle        string   `bson:"subtitle" json:"subtitle"`
	Description     string   `bson:"description" json:"description"`
	LongDescription string   `bson:"long_description" json:"longDescription"`
	Image           string   `bson:"image" json:"image"`
	VideoURL        string   `bson:"video_url" json:"videoUrl"`
	Features        []string `bson:"features" json:"features"`
	Mission         string   `bson:"mission" json:"mission"`
	Vision          string   `bson:"vision" json:"vision"`
}

type Slider struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title"`
	Subtitle    string `bson:"subtitle" json:"subtitle"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
	ButtonText  string `bson:"button_text" json:"buttonText"`
	ButtonLink  string `bson:"button_link" json:"buttonLink"`
	IsActive    bool   `bson:"is_active" json:"isActive"`
	Order       int    `bson:"order" json:"order"`
}

type Service struct {
	ID               string   `bson:"_id,omitempty" json:"id"`
	Title            string   `bson:"title" json:"title"`
	Slug             string   `bson:"slug" json:"slug"`
	ShortDescription string   `bson:"short_description" json:"shortDescription"`
	Description      string   `bson:"description" json:"description"`
	Icon             string   `bson:"icon" json:"icon"`
	Image            string   `bson:"image" json:"image"`
	Features         []string `bson:"features" json:"features"`
	IsActive         bool     `bson:"is_active" json:"isActive"`
	Order            int      `bson:"order" json:"order"`
}

type TeamMember struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Designation string      `bson:"designation" json:"designation"`
	Image       string      `bson:"image" json:"image"`
	Description string      `bson:"description" json:"description"`
	Social      SocialLinks `bson:"social" json:"social"`
	IsActive    bool        `bson:"is_active" json:"isActive"`
	Order       int         `bson:"order" json:"order"`
}

type Testimonial struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Designation string `bson:"designation" json:"designation"`
	Image       string `bson:"image" json:"image"`
	Review      string `bson:"review" json:"review"`
	Rating      int    `bson:"rating" json:"rating"`
	IsActive    bool   `bson:"is_active" json:"isActive"`
	Order       int    `bson:"order" json:"order"`
}

type GalleryImage struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Title    string `bson:"title" json:"title"`
	Category string `bson:"category" json:"category"`
	Image    string `bson:"image" json:"image"`
	IsActive bool   `bson:"is_active" json:"isActive"`
	Order    int    `bson:"order" json:"order"`
}

type BlogPost struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Slug      string    `bson:"slug" json:"slug"`
	Excerpt   string    `bson:"excerpt" json:"excerpt"`
	Content   string    `bson:"content" json:"content"`
	Image     string    `bson:"image" json:"image"`
	Author    string    `bson:"author" json:"author"`
	Category  string    `bson:"category" json:"category"`
	Date      string    `bson:"date" json:"date"`
	Views     int       `bson:"views" json:"views"`
	IsActive  bool      `bson:"is_active" json:"isActive"`
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}

type Event struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title"`
	Slug        string `bson:"slug" json:"slug"`
	Date        string `bson:"date" json:"date"`
	Time        string `bson:"time" json:"time"`
	Location    string `bson:"location" json:"location"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
	IsActive    bool   `bson:"is_active" json:"isActive"`
	Order       int    `bson:"order" json:"order"`
}

type Statistic struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Number   int    `bson:"number" json:"number"`
	Suffix   string `bson:"suffix" json:"suffix"`
	Title    string `bson:"title" json:"title"`
	IsActive bool   `bson:"is_active" json:"isActive"`
	Order    int    `bson:"order" json:"order"`
}

type FAQ struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
	Category string `bson:"category" json:"category"`
	IsActive bool   `bson:"is_active" json:"isActive"`
	Order    int    `bson:"order" json:"order"`
}

type LivingOption struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Price       string   `bson:"price" json:"price"`
	Image       string   `bson:"image" json:"image"`
	Amenities   []string `bson:"amenities" json:"amenities"`
	IsActive    bool     `bson:"is_active" json:"isActive"`
	Order       int      `bson:"order" json:"order"`
}

// HomePopup is a singleton; it is only surfaced publicly while active.
type HomePopup struct {
	ID         string `bson:"_id,omitempty" json:"id,omitempty"`
	IsActive   bool   `bson:"is_active" json:"isActive"`
	Title      string `bson:"title" json:"title"`
	Content    string `bson:"content" json:"content"`
	Image      string `bson:"image" json:"image"`
	ButtonText string `bson:"button_text" json:"buttonText"`
	ButtonLink string `bson:"button_link" json:"buttonLink"`
	ShowOnce   bool   `bson:"show_once" json:"showOnce"`
}

// HomeData is the composite payload for the landing page.
type HomeData struct {
	Settings     SiteSettings  `json:"settings"`
	Sliders      []Slider      `json:"sliders"`
	Services     []Service     `json:"services"`
	About        About         `json:"about"`
	Testimonials []Testimonial `json:"testimonials"`
	Team         []TeamMember  `json:"team"`
	Blogs        []BlogPost    `json:"blogs"`
	Statistics   []Statistic   `json:"statistics"`
	Popup        *HomePopup    `json:"popup"`
}

// AboutData is the composite payload for the about page.
type AboutData struct {
	About        About         `json:"about"`
	Team         []TeamMember  `json:"team"`
	Statistics   []Statistic   `json:"statistics"`
	Testimonials []Testimonial `json:"testimonials"`
}
