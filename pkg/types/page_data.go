package types

type NavItem struct {
	Label  string
	Href   string
	Active bool
}

type NavbarData struct {
	Items []NavItem
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Notice string
	Error  string
	Navbar NavbarData
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

type FlashSetter interface {
	SetFlash(notice, err string)
}

func (d *BasePageData) SetFlash(notice, err string) {
	if notice != "" {
		d.Notice = notice
	}
	if err != "" {
		d.Error = err
	}
}

type StatData struct {
	Value string
	Label string
}

type StepData struct {
	Number      int
	Title       string
	Description string
}

type HomePageData struct {
	BasePageData
	Stats         []StatData
	Steps         []StepData
	UpcomingDrive *BloodDrive
	Articles      []*Article
}

type SearchPageData struct {
	BasePageData
	BloodTypes  []BloodType
	Filters     SearchFilters
	HasSearched bool
	Results     []PublicDonor
	FieldErrors map[string]string
}

type DrivesPageData struct {
	BasePageData
	Drives []*BloodDrive
}

type BlogPageData struct {
	BasePageData
	Articles []*Article
}

type ArticlePageData struct {
	BasePageData
	Article *Article
}

type RemindersPageData struct {
	BasePageData
	BloodTypes  []BloodType
	Form        ReminderRequest
	Today       string
	FieldErrors map[string]string
	Result      *ReminderResult
	SendToken   string
}
