package api

import (
	"net/http"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/SergeyKozhin/trailer-scheduler/internal/timegrid"
)

const dateFormat = "2006-01-02"

type dayResp struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Date  string `json:"date"`
	Label string `json:"label"`
}

type slotResp struct {
	Time  string `json:"time"`
	Label string `json:"label,omitempty"`
}

type colorResp struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (a *Api) getGridHandler(w http.ResponseWriter, r *http.Request) {
	week, err := intQueryParam(r, "week", 0)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	dates := a.grid.WeekDates(week)
	names := a.grid.DayNames()

	days := make([]dayResp, len(dates))
	for i, d := range dates {
		days[i] = dayResp{
			Index: i,
			Name:  names[i],
			Date:  d.Format(dateFormat),
			Label: timegrid.FormatDate(d),
		}
	}

	labels := a.grid.Labels()
	slots := make([]slotResp, len(labels))
	for i, l := range labels {
		slots[i] = slotResp{Time: l.Slot, Label: l.Label}
	}

	colors := make([]colorResp, len(model.Palette))
	for i, c := range model.Palette {
		colors[i] = colorResp{Name: c.Name, Value: c.Value}
	}

	resp := &struct {
		Week   int         `json:"week"`
		Range  string      `json:"range"`
		Days   []dayResp   `json:"days"`
		Slots  []slotResp  `json:"slots"`
		Colors []colorResp `json:"colors"`
	}{
		Week:   week,
		Range:  timegrid.RangeLabel(dates),
		Days:   days,
		Slots:  slots,
		Colors: colors,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
