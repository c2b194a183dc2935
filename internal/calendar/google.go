package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2/google"

	"github.com/psiboxes/box-scheduler/internal/domain/booking"
)

const calendarScope = "https://www.googleapis.com/auth/calendar"

// GoogleClient talks to the Google Calendar v3 REST API. The oauth2 transport
// inside the http.Client owns token refresh; nothing here sees credentials.
type GoogleClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewGoogleClient builds a gateway authenticated with a service-account
// credentials file.
func NewGoogleClient(ctx context.Context, credentialsFile, baseURL string) (*GoogleClient, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("calendar: read credentials: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(data, calendarScope)
	if err != nil {
		return nil, fmt.Errorf("calendar: parse credentials: %w", err)
	}

	return &GoogleClient{
		httpClient: jwtCfg.Client(ctx),
		baseURL:    baseURL,
	}, nil
}

// NewGoogleClientWithHTTP injects the transport and base URL directly.
func NewGoogleClientWithHTTP(httpClient *http.Client, baseURL string) *GoogleClient {
	return &GoogleClient{httpClient: httpClient, baseURL: baseURL}
}

// --------- Wire format ---------

type freeBusyItem struct {
	ID string `json:"id"`
}

type freeBusyRequest struct {
	TimeMin string         `json:"timeMin"`
	TimeMax string         `json:"timeMax"`
	Items   []freeBusyItem `json:"items"`
}

type busyTimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type freeBusyCalendar struct {
	Busy []busyTimeSlot `json:"busy"`
}

type freeBusyResponse struct {
	Calendars map[string]freeBusyCalendar `json:"calendars"`
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type eventBody struct {
	Summary string    `json:"summary"`
	Start   eventTime `json:"start"`
	End     eventTime `json:"end"`
}

type eventResponse struct {
	ID string `json:"id"`
}

// --------- Gateway ---------

func (g *GoogleClient) FreeBusy(
	ctx context.Context,
	calendarID string,
	timeMin time.Time,
	timeMax time.Time,
) ([]booking.BusyInterval, error) {

	reqBody := freeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   []freeBusyItem{{ID: calendarID}},
	}

	var res freeBusyResponse
	if err := g.post(ctx, g.baseURL+"/freeBusy", reqBody, &res); err != nil {
		return nil, err
	}

	busy := res.Calendars[calendarID].Busy
	intervals := make([]booking.BusyInterval, 0, len(busy))
	for _, b := range busy {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			return nil, fmt.Errorf("calendar: parse busy start %q: %w", b.Start, err)
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			return nil, fmt.Errorf("calendar: parse busy end %q: %w", b.End, err)
		}
		intervals = append(intervals, booking.BusyInterval{Start: start, End: end})
	}

	return intervals, nil
}

func (g *GoogleClient) InsertEvent(
	ctx context.Context,
	calendarID string,
	ev booking.Event,
) (string, error) {

	reqBody := eventBody{
		Summary: ev.Summary,
		Start:   eventTime{DateTime: ev.Start.Format(time.RFC3339), TimeZone: ev.TimeZone},
		End:     eventTime{DateTime: ev.End.Format(time.RFC3339), TimeZone: ev.TimeZone},
	}

	endpoint := g.baseURL + "/calendars/" + url.PathEscape(calendarID) + "/events"

	var res eventResponse
	if err := g.post(ctx, endpoint, reqBody, &res); err != nil {
		return "", err
	}

	return res.ID, nil
}

func (g *GoogleClient) post(ctx context.Context, endpoint string, in any, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calendar: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("calendar: unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
