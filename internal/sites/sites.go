package sites

import (
	"sort"

	"github.com/psiboxes/box-scheduler/internal/httperr"
)

// Site is a physical location with its own box inventory and external calendar.
type Site struct {
	Name       string `json:"name"`
	CalendarID string `json:"-"`
}

// Registry resolves site names to calendars. Built once from config at startup.
type Registry struct {
	byName map[string]Site
	names  []string
}

func NewRegistry(siteCalendars map[string]string) *Registry {
	byName := make(map[string]Site, len(siteCalendars))
	names := make([]string, 0, len(siteCalendars))

	for name, calendarID := range siteCalendars {
		byName[name] = Site{Name: name, CalendarID: calendarID}
		names = append(names, name)
	}
	sort.Strings(names)

	return &Registry{byName: byName, names: names}
}

func (r *Registry) Get(name string) (Site, error) {
	site, ok := r.byName[name]
	if !ok {
		return Site{}, httperr.ErrBusiness("unknown_site")
	}
	return site, nil
}

// List returns all sites in stable name order, for forms and the API.
func (r *Registry) List() []Site {
	out := make([]Site, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}
