package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"deskkit/internal/actions"
	"deskkit/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/BurntSushi/toml"
	golocale "github.com/jeandeaual/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

type entry struct {
	verb    actions.Verb
	icon    func() fyne.Resource
	choices bool
}

var entries = map[actions.Kind]entry{
	actions.KindExportImage:       {verb: actions.Do, icon: theme.FileImageIcon},
	actions.KindExportPDF:         {verb: actions.Do, icon: theme.FileApplicationIcon},
	actions.KindExportVector:      {verb: actions.Do, icon: theme.ColorPaletteIcon},
	actions.KindExportSpreadsheet: {verb: actions.Do, icon: theme.GridIcon},

	actions.KindLoadOpen:    {verb: actions.Do, icon: theme.FolderOpenIcon},
	actions.KindLoadURL:     {verb: actions.Do, icon: theme.UploadIcon},
	actions.KindLoadSamples: {verb: actions.Do, icon: theme.InfoIcon},
	actions.KindLoadReload:  {verb: actions.Do, icon: theme.ViewRefreshIcon},

	actions.KindRecentFile: {verb: actions.Do, icon: theme.HistoryIcon},

	actions.KindViewGrid:    {verb: actions.Check, icon: theme.GridIcon},
	actions.KindViewSidebar: {verb: actions.Toggle, icon: theme.MenuIcon},
	actions.KindViewTheme:   {verb: actions.Choose, choices: true},
	actions.KindViewUnits:   {verb: actions.Select, choices: true},
	actions.KindViewZoom:    {verb: actions.Spin, icon: theme.ZoomInIcon},
	actions.KindViewDate:    {verb: actions.PickDate, icon: theme.HistoryIcon},
	actions.KindViewAccent:  {verb: actions.PickColor, icon: theme.ColorPaletteIcon},
}

const rankMessage = "recent.rank"

// Catalog is an actions.Factory backed by the embedded message files.
type Catalog struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
	logger  logger.Logger
}

func New(log logger.Logger) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			return nil, fmt.Errorf("load messages %s: %w", name, err)
		}
	}

	log.Debug("Catalog", "message files loaded", map[string]interface{}{
		"files":     len(files),
		"languages": len(bundle.LanguageTags()),
	})

	return &Catalog{
		bundle:  bundle,
		matcher: language.NewMatcher(bundle.LanguageTags()),
		logger:  log,
	}, nil
}

// Languages lists the locales with message files.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Context resolves the requested locale against the available translations.
// An empty locale falls back to the system locale, then English.
func (c *Catalog) Context(locale, product string) actions.Context {
	if strings.TrimSpace(locale) == "" {
		locale = systemLocale()
	}

	requested, err := language.Parse(locale)
	if err != nil {
		c.logger.Warning("Catalog", "unparseable locale, using English", map[string]interface{}{
			"locale": locale,
		})
		requested = language.English
	}

	_, idx, confidence := c.matcher.Match(requested)
	tag := c.bundle.LanguageTags()[idx]
	if confidence == language.No {
		tag = language.English
	}

	return actions.Context{Locale: tag, Product: product}
}

func systemLocale() string {
	loc, err := golocale.GetLocale()
	if err != nil {
		return "en"
	}
	return loc
}

func (c *Catalog) localizer(ctx actions.Context) *i18n.Localizer {
	return i18n.NewLocalizer(c.bundle, ctx.Locale.String())
}

func (c *Catalog) Make(ctx actions.Context, kind actions.Kind) (*actions.Action, error) {
	e, ok := entries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", actions.ErrUnknownKind, kind)
	}

	loc := c.localizer(ctx)
	label, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    string(kind),
		TemplateData: map[string]interface{}{"Product": ctx.Product},
	})
	if err != nil {
		return nil, fmt.Errorf("localize %s: %w", kind, err)
	}

	opts := []actions.Option{
		actions.WithKind(kind),
		actions.WithLabel(label),
	}
	if e.icon != nil {
		opts = append(opts, actions.WithIcon(e.icon()))
	}
	if e.choices {
		choices, err := loc.Localize(&i18n.LocalizeConfig{MessageID: string(kind) + ".choices"})
		if err != nil {
			return nil, fmt.Errorf("localize %s choices: %w", kind, err)
		}
		opts = append(opts, actions.WithChoices(strings.Split(choices, "|")...))
	}

	return actions.New(e.verb, opts...), nil
}

func (c *Catalog) RankHeader(ctx actions.Context, rank int) string {
	header, err := c.localizer(ctx).Localize(&i18n.LocalizeConfig{
		MessageID:    rankMessage,
		TemplateData: map[string]interface{}{"Rank": rank},
	})
	if err != nil {
		c.logger.Warning("Catalog", "rank header missing", map[string]interface{}{
			"locale": ctx.Locale.String(),
			"error":  err.Error(),
		})
		return fmt.Sprintf("%d ", rank)
	}
	return header
}
