package curriculum

import (
	"fmt"
	"os"
	"path/filepath"

	"gosets/internal/log"
	"gosets/pkg/setexpr"
	"gosets/pkg/utils"
)

// Loader reads packs from disk and follows their include lists.
type Loader struct {
	logger log.Logger
}

func NewLoader(logger log.Logger) *Loader {
	return &Loader{logger: logger.With("module", "curriculum")}
}

// LoadFile reads the pack at path together with everything it includes,
// relative to the including file. Included challenges come first, in
// include order. Every included pack, however deeply nested, must pose
// the root's universe: it either declares the same sets and layout or
// declares neither and inherits them. Include cycles are rejected, and a
// file reached twice through different branches is read once. The returned
// pack has an empty Include list.
func (l *Loader) LoadFile(path string) (*Pack, error) {
	fullPath, _, err := utils.GetPathInfo(path)
	if err != nil {
		return nil, err
	}
	root, err := l.load(fullPath, nil, make(map[string]bool), make(map[string]bool))
	if err != nil {
		return nil, err
	}
	if err := root.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.logger.Info("loaded challenge pack", "path", fullPath, "title", root.Title, "challenges", len(root.Challenges))
	return root, nil
}

// load reads the pack at fullPath. u is the root's universe, nil while the
// root itself is being read.
func (l *Loader) load(fullPath string, u *setexpr.Universe, visitedStack, alreadyProcessed map[string]bool) (*Pack, error) {
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pack: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fullPath, err)
	}
	alreadyProcessed[fullPath] = true

	if u == nil {
		if u, err = p.Universe(); err != nil {
			return nil, fmt.Errorf("%s: %w", fullPath, err)
		}
	} else if err := poses(p, u); err != nil {
		return nil, fmt.Errorf("%s: %w", fullPath, err)
	}

	newStack := make(map[string]bool, len(visitedStack)+1)
	for k, v := range visitedStack {
		newStack[k] = v
	}
	newStack[fullPath] = true

	var included []Challenge
	for _, name := range p.Include {
		incPath, err := utils.ResolveFrom(filepath.Dir(fullPath), name)
		if err != nil {
			return nil, err
		}
		if newStack[incPath] {
			return nil, fmt.Errorf("circular include detected: %s (from %s)", name, fullPath)
		}
		if alreadyProcessed[incPath] {
			l.logger.Debug("skipping pack included twice", "path", incPath)
			continue
		}

		child, err := l.load(incPath, u, newStack, alreadyProcessed)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("included pack", "path", incPath, "challenges", len(child.Challenges))
		included = append(included, child.Challenges...)
	}

	p.Challenges = append(included, p.Challenges...)
	p.Include = nil
	return p, nil
}

// poses reports an error if p declares a universe other than u. A pack
// that declares neither sets nor layout inherits u.
func poses(p *Pack, u *setexpr.Universe) error {
	if len(p.Sets) == 0 && p.Layout == "" {
		return nil
	}
	pu, err := p.Universe()
	if err != nil {
		return err
	}
	if pu.Layout() != u.Layout() {
		return fmt.Errorf("layout %s differs from %s", pu.Layout(), u.Layout())
	}
	want, got := u.Names(), pu.Names()
	if len(want) != len(got) {
		return fmt.Errorf("sets %v differ from %v", got, want)
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("sets %v differ from %v", got, want)
		}
	}
	return nil
}
