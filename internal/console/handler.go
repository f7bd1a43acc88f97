package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sweeney/soil-irrigator/internal/logic"
	"github.com/sweeney/soil-irrigator/internal/status"
)

// Station is the controller surface the console operates on. Implemented
// by the control loop; all calls run on the control-loop goroutine.
type Station interface {
	ZoneCount() int
	Snapshots() []logic.ZoneSnapshot
	SetCalibration(zone int, point logic.CalPoint, value int) error
	ResetFault(zone int) error
}

// Handler parses and executes one command line at a time. Malformed input
// produces a human-readable error and changes no state.
type Handler struct {
	st Station
}

// NewHandler creates a Handler over st.
func NewHandler(st Station) *Handler {
	return &Handler{st: st}
}

// Execute runs one command line and returns the response text. A blank
// line returns an empty response, which the loop does not echo.
func (h *Handler) Execute(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	switch strings.ToUpper(fields[0]) {
	case "STATUS":
		return status.FormatStatus(h.st.Snapshots())
	case "SHOWCAL":
		return status.FormatCalibration(h.st.Snapshots())
	case "CAL":
		return h.execCal(fields)
	case "RESET":
		return h.execReset(fields)
	default:
		return fmt.Sprintf("unknown command: %s", fields[0])
	}
}

// execCal handles CAL Z <n> DRY|WET <v>.
func (h *Handler) execCal(fields []string) string {
	if len(fields) != 5 || !strings.EqualFold(fields[1], "Z") {
		return "usage: CAL Z <zone> DRY|WET <value>"
	}
	zone, errMsg := h.parseZone(fields[2])
	if errMsg != "" {
		return errMsg
	}
	var point logic.CalPoint
	switch strings.ToUpper(fields[3]) {
	case "DRY":
		point = logic.CalDry
	case "WET":
		point = logic.CalWet
	default:
		return fmt.Sprintf("unknown calibration point %q (want DRY or WET)", fields[3])
	}
	v, err := strconv.Atoi(fields[4])
	if err != nil || v <= 0 {
		return fmt.Sprintf("bad value %q: want a positive integer", fields[4])
	}
	if err := h.st.SetCalibration(zone, point, v); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("zone %d %s reference set to %d", zone+1, strings.ToLower(string(point)), v)
}

// execReset handles RESET Z <n>, the explicit operator fault reset.
func (h *Handler) execReset(fields []string) string {
	if len(fields) != 3 || !strings.EqualFold(fields[1], "Z") {
		return "usage: RESET Z <zone>"
	}
	zone, errMsg := h.parseZone(fields[2])
	if errMsg != "" {
		return errMsg
	}
	if err := h.st.ResetFault(zone); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("zone %d fault cleared", zone+1)
}

// parseZone converts a 1-based protocol zone index to the internal
// 0-based index, returning an error message for anything out of range.
func (h *Handler) parseZone(s string) (int, string) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > h.st.ZoneCount() {
		return 0, fmt.Sprintf("bad zone %q: want 1..%d", s, h.st.ZoneCount())
	}
	return n - 1, ""
}
