// internal/narrate/narrate.go
//
// Localized console narration for sessions and observers.
// Responsibilities:
//   - Load locale catalogs (YAML: locale + messages) and register them with
//     the x/text message catalog.
//   - Print one flavor-text line per Say call in the narrator's locale.
//
// Notes:
//   - Wording is flavor text, not a contract; tests assert on events instead.
//   - The embedded catalogs under assets/locales are registered once, lazily.

package narrate

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/arena/assets"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Key identifies a catalog message.
type Key string

const (
	GameStarting    Key = "game.starting"
	GameFinished    Key = "game.finished"
	PlayerInventory Key = "player.inventory"
	PlayerCollected Key = "player.collected"
	EnemyAppears    Key = "enemy.appears"
	PlayerAttacks   Key = "player.attacks"
	EnemyHit        Key = "enemy.hit"
	ArmorAbsorbed   Key = "enemy.armor_absorbed"
	EnemyDefeated   Key = "enemy.defeated"

	NoticedJoin    Key = "observer.noticed_join"
	NoticedSpawn   Key = "observer.noticed_spawn"
	TookDamage     Key = "observer.took_damage"
	HeardDefeat    Key = "observer.heard_defeat"
	Ready          Key = "observer.ready"
	AcknowledgeEnd Key = "observer.acknowledge_end"
)

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

var (
	registerOnce sync.Once
	locales      map[string]language.Tag // registered locale -> tag
	registerErr  error
)

// Register parses every *.yaml catalog at the root of fsys and adds its
// messages to the x/text catalog. It returns the registered locales.
func Register(fsys fs.FS) (map[string]language.Tag, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	out := make(map[string]language.Tag, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var cf catalogFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if cf.Locale == "" {
			cf.Locale = strings.TrimSuffix(path.Base(name), ".yaml")
		}
		tag, err := language.Parse(cf.Locale)
		if err != nil {
			return nil, fmt.Errorf("%s: locale %q: %w", name, cf.Locale, err)
		}
		for key, msg := range cf.Messages {
			if err := message.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%s: set %q: %w", name, key, err)
			}
		}
		out[cf.Locale] = tag
	}
	return out, nil
}

// registerDefaults registers the embedded catalogs exactly once.
func registerDefaults() error {
	registerOnce.Do(func() {
		fsys, err := assets.Locales()
		if err != nil {
			registerErr = err
			return
		}
		locales, registerErr = Register(fsys)
	})
	return registerErr
}

// Locales lists the embedded locales in sorted order.
func Locales() []string {
	if err := registerDefaults(); err != nil {
		return nil
	}
	out := make([]string, 0, len(locales))
	for l := range locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Narrator writes localized lines to w. A nil *Narrator is silent.
type Narrator struct {
	mu     sync.Mutex // guards w
	w      io.Writer
	p      *message.Printer
	locale string
}

// New returns a narrator for one of the embedded locales.
func New(w io.Writer, locale string) (*Narrator, error) {
	if err := registerDefaults(); err != nil {
		return nil, fmt.Errorf("register catalogs: %w", err)
	}
	if locale == "" {
		locale = DefaultLocale
	}
	tag, ok := locales[locale]
	if !ok {
		return nil, fmt.Errorf("narrate: unknown locale %q (have %s)", locale, strings.Join(Locales(), ", "))
	}
	return &Narrator{w: w, p: message.NewPrinter(tag), locale: locale}, nil
}

// Locale reports the narrator's locale.
func (n *Narrator) Locale() string {
	if n == nil {
		return ""
	}
	return n.locale
}

// Say prints the message for key followed by a newline.
func (n *Narrator) Say(key Key, args ...any) {
	if n == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = n.p.Fprintf(n.w, string(key), args...)
	_, _ = io.WriteString(n.w, "\n")
}
