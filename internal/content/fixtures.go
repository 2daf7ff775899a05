package content

// FixtureSet bundles the fallback dataset for callers outside the package,
// primarily the seed command.
type FixtureSet struct {
	Settings      SiteSettings
	About         About
	Sliders       []Slider
	Services      []Service
	TeamMembers   []TeamMember
	Testimonials  []Testimonial
	Gallery       []GalleryImage
	BlogPosts     []BlogPost
	Events        []Event
	Statistics    []Statistic
	FAQs          []FAQ
	LivingOptions []LivingOption
	HomePopup     HomePopup
}

func Fixtures() FixtureSet {
	return FixtureSet{
		Settings:      staticSiteSettings,
		About:         staticAbout,
		Sliders:       staticSliders,
		Services:      staticServices,
		TeamMembers:   staticTeamMembers,
		Testimonials:  staticTestimonials,
		Gallery:       staticGallery,
		BlogPosts:     staticBlogPosts,
		Events:        staticEvents,
		Statistics:    staticStatistics,
		FAQs:          staticFAQs,
		LivingOptions: staticLivingOptions,
		HomePopup:     staticHomePopup,
	}
}
