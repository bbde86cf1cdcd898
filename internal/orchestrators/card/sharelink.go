package card

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fogoseda/party-api/internal/entities"
	"github.com/fogoseda/party-api/internal/errors"
)

const shareBaseURL = "https://fogoseda.app/config"

// ShareSettings is the subset of session settings carried by a share link
type ShareSettings struct {
	Level    entities.Level
	Mode     entities.Mode
	Theme    string
	NoRepeat int
	Filters  entities.BanFilters
}

// EncodeShareLink builds a settings link from session settings
func EncodeShareLink(s ShareSettings) string {
	values := url.Values{}
	values.Set("level", string(s.Level))
	values.Set("mode", string(s.Mode))
	if s.Theme != "" {
		values.Set("theme", s.Theme)
	}
	values.Set("norepeat", strconv.Itoa(s.NoRepeat))
	if s.Filters.NoOral {
		values.Set("no_oral", "1")
	}
	if s.Filters.NoDom {
		values.Set("no_dom", "1")
	}
	if s.Filters.NoNudez {
		values.Set("no_nudez", "1")
	}
	return shareBaseURL + "?" + values.Encode()
}

// DecodeShareLink parses a settings link. Unknown parameters are ignored;
// invalid values leave the corresponding field zero so the caller keeps
// the session's current setting.
func DecodeShareLink(link string) (ShareSettings, error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return ShareSettings{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed share link")
	}

	values := parsed.Query()
	if len(values) == 0 {
		// bare query strings are accepted too
		values, err = url.ParseQuery(link)
		if err != nil {
			return ShareSettings{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed share link")
		}
	}

	var s ShareSettings
	if level := entities.Level(values.Get("level")); level.Valid() {
		s.Level = level
	}
	if mode := entities.Mode(values.Get("mode")); mode.Valid() {
		s.Mode = mode
	}
	s.Theme = values.Get("theme")
	if n, err := strconv.Atoi(values.Get("norepeat")); err == nil {
		s.NoRepeat = n
	}
	s.Filters = entities.BanFilters{
		NoOral:  values.Get("no_oral") == "1",
		NoDom:   values.Get("no_dom") == "1",
		NoNudez: values.Get("no_nudez") == "1",
	}
	return s, nil
}

// ShareLink exports the session settings as a link
func (o *orchestrator) ShareLink(ctx context.Context, input *ShareLinkInput) (*ShareLinkOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &ShareLinkOutput{Link: EncodeShareLink(ShareSettings{
		Level:    session.Level,
		Mode:     session.Mode,
		Theme:    session.Theme,
		NoRepeat: session.NoRepeat,
		Filters:  session.Filters,
	})}, nil
}

// ApplyShareLink imports settings from a link into the session. Values
// the link does not carry, or carries invalidly, are left unchanged.
func (o *orchestrator) ApplyShareLink(ctx context.Context, input *ApplyShareLinkInput) (*ApplyShareLinkOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	settings, err := DecodeShareLink(input.Link)
	if err != nil {
		return nil, err
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if settings.Level != "" {
		session.Level = settings.Level
	}
	if settings.Mode != "" {
		session.Mode = settings.Mode
	}
	if settings.Theme != "" {
		session.Theme = settings.Theme
	}
	if settings.NoRepeat != 0 {
		session.NoRepeat = o.balance.ClampNoRepeat(settings.NoRepeat)
		if len(session.RecentIDs) > session.NoRepeat {
			session.RecentIDs = session.RecentIDs[:session.NoRepeat]
		}
	}
	session.Filters = settings.Filters

	out, err := o.finishSettingsChange(ctx, session)
	if err != nil {
		return nil, err
	}

	return &ApplyShareLinkOutput{Session: out.Session}, nil
}
