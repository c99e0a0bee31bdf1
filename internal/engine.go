package internal

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/organisemyprojects/guilint/internal/lints"
	"github.com/organisemyprojects/guilint/internal/nolint"
	tt "github.com/organisemyprojects/guilint/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	rules        map[string]LintRule
	cache        *Cache

	// watch mode state
	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching atomic.Bool
	logger     *zap.Logger
}

// NewEngine creates a new lint engine with the default rule set, adjusted
// by the per-rule configuration.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{}
	engine.applyRules(rules)
	return engine, nil
}

type ruleConstructor func() LintRule

type ruleMap map[string]ruleConstructor

var allRuleConstructors = ruleMap{
	"widget-naming":       NewWidgetNamingRule,
	"handler-naming":      NewHandlerNamingRule,
	"constant-naming":     NewConstantNamingRule,
	"class-naming":        NewClassNamingRule,
	"function-spacing":    NewFunctionSpacingRule,
	"layout-conflict":     NewLayoutConflictRule,
	"geometry-preference": NewGeometryPreferenceRule,
	"log-message":         NewLogMessageRule,
	"spelling-icloud":     NewSpellingRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = make(map[string]LintRule)
	e.registerDefaultRules()

	for key, rule := range rules {
		r := e.findRule(key)
		if r == nil {
			// unknown rule name, skip
			continue
		}
		if rule.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
		r.SetSeverity(rule.Severity)
	}
}

func (e *Engine) registerDefaultRules() {
	for key, newRule := range allRuleConstructors {
		e.rules[key] = newRule()
	}
}

func (e *Engine) findRule(name string) LintRule {
	if rule, ok := e.rules[name]; ok {
		return rule
	}
	return nil
}

// IgnoreRule disables a rule for the rest of this engine's lifetime.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// EnableCache attaches a persistent result cache to the engine. Run will
// serve unchanged files from it.
func (e *Engine) EnableCache(cacheDir string) error {
	cache, err := NewCache(cacheDir)
	if err != nil {
		return err
	}
	e.cache = cache
	return nil
}

// Run applies all lint rules to the given file and returns its findings.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.cache != nil {
		if issues, ok := e.cache.Get(filename); ok {
			return issues, nil
		}
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}

	issues, err := e.RunSource(filename, src)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(filename, issues); err != nil {
			return issues, nil // cache write failure is not a lint failure
		}
	}
	return issues, nil
}

// RunSource applies all lint rules to source text. A file that cannot be
// parsed yields exactly one PARSE_ERROR finding and a nil error, so one
// broken file never aborts a multi-file run.
func (e *Engine) RunSource(filename string, src []byte) ([]tt.Issue, error) {
	result, err := e.Analyze(filename, src)
	if err != nil {
		return nil, err
	}
	return result.Issues, nil
}

// Analyze is RunSource plus the detected framework and the explicit
// clean/non-clean distinction.
func (e *Engine) Analyze(filename string, src []byte) (*tt.AnalysisResult, error) {
	file, err := lints.ParseSource(filename, src)
	if err != nil {
		var perr *lints.ParseError
		if errors.As(err, &perr) {
			return &tt.AnalysisResult{
				Filename: filename,
				Issues:   []tt.Issue{parseErrorIssue(perr)},
			}, nil
		}
		return nil, err
	}
	defer file.Close()

	nolintMgr := nolint.ParseComments(file)

	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		wg.Add(1)
		go func(r LintRule) {
			defer wg.Done()
			if e.ignoredRules[r.Name()] {
				return
			}
			issues, err := r.Check(file)
			if err != nil {
				return
			}

			nolinted := filterNolintIssues(nolintMgr, issues)

			mu.Lock()
			allIssues = append(allIssues, nolinted...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	sortIssues(allIssues)

	return &tt.AnalysisResult{
		Filename:  filename,
		Framework: file.Framework,
		Issues:    allIssues,
	}, nil
}

func parseErrorIssue(perr *lints.ParseError) tt.Issue {
	pos := token.Position{
		Filename: perr.Filename,
		Line:     perr.Line,
		Column:   perr.Column,
	}
	return tt.Issue{
		Rule:     "parse-error",
		Category: tt.CategoryParseError,
		Filename: perr.Filename,
		Severity: tt.SeverityError,
		Message:  fmt.Sprintf("file could not be parsed: syntax error at line %d, column %d", perr.Line, perr.Column),
		Start:    pos,
		End:      pos,
	}
}

// sortIssues orders findings by ascending line, then category (NAMING,
// FORMATTING, LAYOUT_CONFLICT), then rule name and column for stability.
func sortIssues(issues []tt.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Start.Line != b.Start.Line {
			return a.Start.Line < b.Start.Line
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		return a.Start.Column < b.Start.Column
	})
}

func filterNolintIssues(mgr *nolint.Manager, issues []tt.Issue) []tt.Issue {
	if mgr == nil {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !mgr.IsNolint(issue.Start, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// SourceCode stores the content of a source code file for report rendering.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a SourceCode.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &SourceCode{Lines: strings.Split(string(content), "\n")}, nil
}
