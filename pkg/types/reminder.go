package types

// ReminderRequest carries the donor facts rendered into the reminder prompt.
// DaysSinceLastDonation is computed by the caller relative to its own clock.
type ReminderRequest struct {
	DonorName             string    `json:"donorName" form:"donorName"`
	DonorEmail            string    `json:"donorEmail" form:"donorEmail"`
	DonorPhone            string    `json:"donorPhone" form:"donorPhone"`
	LastDonationDate      string    `json:"lastDonationDate" form:"lastDonationDate"`
	BloodType             BloodType `json:"bloodType" form:"bloodType"`
	DaysSinceLastDonation int       `json:"daysSinceLastDonation" form:"-"`
}

type ReminderResult struct {
	EmailContent string `json:"emailContent" form:"emailContent"`
	SMSContent   string `json:"smsContent" form:"smsContent"`
}

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// SendReminderForm is generated copy addressed to a donor, ready to deliver
// over Channels.
type SendReminderForm struct {
	DonorName    string
	DonorEmail   string
	DonorPhone   string
	EmailContent string
	SMSContent   string
	Channels     []string
}
