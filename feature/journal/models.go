package journal

import "time"

// Launch statuses.
const (
	StatusStarting = "starting"
	StatusRunning  = "running"
	StatusFailed   = "failed"
	StatusStopped  = "stopped"
)

// StudioLaunch is one row of the launch journal.
type StudioLaunch struct {
	ID           string     `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	RemotionRoot string     `gorm:"column:remotion_root;type:varchar(1024)" json:"remotion_root"`
	EntryPoint   string     `gorm:"column:entry_point;type:varchar(1024)" json:"entry_point"`
	DesiredPort  int        `gorm:"column:desired_port" json:"desired_port"`
	Port         int        `gorm:"column:port" json:"port"`
	LogLevel     string     `gorm:"column:log_level;type:varchar(16)" json:"log_level"`
	Status       string     `gorm:"column:status;type:varchar(16);index" json:"status"`
	Error        string     `gorm:"column:error;type:text" json:"error,omitempty"`
	StartedAt    time.Time  `gorm:"column:started_at;index" json:"started_at"`
	FinishedAt   *time.Time `gorm:"column:finished_at" json:"finished_at,omitempty"`
}

// TableName overrides GORM's pluralized default.
func (StudioLaunch) TableName() string {
	return "studio_launches"
}
