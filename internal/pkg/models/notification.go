package models

// ChannelReport is the counter triple one notification channel returns
// after fanning out to a contact list. Notified lists the contact IDs the
// channel actually reached; it feeds responder bookkeeping and stays off
// the wire.
type ChannelReport struct {
	Sent     int      `json:"sent"`
	Failed   int      `json:"failed"`
	Total    int      `json:"total"`
	Notified []string `json:"-"`
}

// NotificationReport aggregates per-channel counters for one alert.
// A configured channel that ran is always present; absence of a channel
// is expressed as zero counts rather than omission. Notified is the
// deduplicated union of contact IDs reached across channels.
type NotificationReport struct {
	EmailSent   int      `json:"emailSent"`
	EmailFailed int      `json:"emailFailed"`
	EmailTotal  int      `json:"emailTotal"`
	SMSSent     int      `json:"smsSent"`
	SMSFailed   int      `json:"smsFailed"`
	SMSTotal    int      `json:"smsTotal"`
	PushSent    int      `json:"pushSent"`
	PushFailed  int      `json:"pushFailed"`
	PushTotal   int      `json:"pushTotal"`
	Notified    []string `json:"-"`
}

// TriggerResult is the response body of the alert pipeline
type TriggerResult struct {
	Alert         *AlertSummary       `json:"alert"`
	Notifications *NotificationReport `json:"notifications"`
}
