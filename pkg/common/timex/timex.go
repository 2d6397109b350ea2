package timex

import "time"

const HumanLayout = "2006-01-02 15:04:05"

func Human(value time.Time) string {
	return value.Format(HumanLayout)
}

// HumanDuration rounds to milliseconds; runs of this tool rarely take longer than that
func HumanDuration(value time.Duration) string {
	return value.Round(time.Millisecond).String()
}
