package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/vigor/internal/constants"
	vigorerrors "github.com/julianstephens/vigor/internal/errors"
	"github.com/julianstephens/vigor/internal/logger"
	"github.com/julianstephens/vigor/internal/reminders"
)

// TrayFacility implements reminders.Facility by maintaining a schedule file
// in the tray application's config directory. The tray process watches the
// file and fires the notifications; cancel-and-replace maps to rewriting the
// file.
type TrayFacility struct {
	dir string
}

type scheduleEntry struct {
	Type      string            `json:"type"` // "daily" or "weekly"
	Weekday   int               `json:"weekday,omitempty"`
	TimeOfDay string            `json:"time_of_day"`
	Payload   reminders.Payload `json:"payload"`
}

func NewTrayFacility() (*TrayFacility, error) {
	dir, err := TrayConfigDir()
	if err != nil {
		return nil, err
	}
	return &TrayFacility{dir: dir}, nil
}

func (f *TrayFacility) schedulePath() string {
	return filepath.Join(f.dir, constants.NotifierScheduleName)
}

// CancelAll drops every scheduled trigger.
func (f *TrayFacility) CancelAll() error {
	if err := os.MkdirAll(f.dir, 0700); err != nil {
		if os.IsPermission(err) {
			return vigorerrors.NewPermission("cancel reminders", err)
		}
		return err
	}
	if err := os.WriteFile(f.schedulePath(), nil, 0600); err != nil {
		if os.IsPermission(err) {
			return vigorerrors.NewPermission("cancel reminders", err)
		}
		return err
	}

	f.pokeTray()
	return nil
}

func (f *TrayFacility) ScheduleDaily(timeOfDay string, p reminders.Payload) error {
	return f.appendEntry(scheduleEntry{Type: "daily", TimeOfDay: timeOfDay, Payload: p})
}

func (f *TrayFacility) ScheduleWeekly(weekday time.Weekday, timeOfDay string, p reminders.Payload) error {
	return f.appendEntry(scheduleEntry{Type: "weekly", Weekday: int(weekday), TimeOfDay: timeOfDay, Payload: p})
}

func (f *TrayFacility) appendEntry(e scheduleEntry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(f.schedulePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsPermission(err) {
			return vigorerrors.NewPermission("schedule reminder", err)
		}
		return err
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%s\n", line); err != nil {
		return err
	}
	return nil
}

// pokeTray asks a running tray process to reload its schedule. Best effort:
// if the tray is not running it will pick the file up on next start.
func (f *TrayFacility) pokeTray() {
	port, secret, err := findAndValidateTrayProcess(filepath.Join(f.dir, constants.NotifierLockfileName))
	if err != nil {
		logger.Debug("Tray not reachable for schedule reload", "error", err)
		return
	}

	url := fmt.Sprintf("http://127.0.0.1:%s/reload", port)
	req, err := http.NewRequest("POST", url, nil)
	if err != nil {
		return
	}
	req.Header.Set("X-Vigor-Secret", secret)

	res, err := (&http.Client{Timeout: 2 * time.Second}).Do(req)
	if err != nil {
		logger.Debug("Tray schedule reload failed", "error", err)
		return
	}
	res.Body.Close()
}
