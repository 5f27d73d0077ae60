package hclsuite

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/suitebuilder/internal/ctxlog"
	"github.com/specialistvlad/suitebuilder/internal/fsutil"
	"github.com/specialistvlad/suitebuilder/internal/parsing"
	"github.com/spf13/afero"
)

const (
	// Extension is the file extension of suite files.
	Extension = ".hcl"
	// InitFile holds the settings of a directory suite.
	InitFile = "__init__" + Extension
)

// Parser is the HCL-specific implementation of the parsing.Parser interface.
type Parser struct {
	fs afero.Fs
}

// NewParser creates a parser reading suite sources from fs.
func NewParser(fs afero.Fs) *Parser {
	return &Parser{fs: fs}
}

// Parse reads a suite file or a suite directory.
func (p *Parser) Parse(ctx context.Context, source string) (*parsing.SuiteData, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL suite parser started.", "source", source)

	info, err := p.fs.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", source, err)
	}

	parser := hclparse.NewParser()
	if info.IsDir() {
		return p.parseDirectory(ctx, parser, source)
	}
	if !strings.HasSuffix(source, Extension) {
		return nil, fmt.Errorf("unsupported suite file %s: expected a %s file", source, Extension)
	}
	return p.parseFile(ctx, parser, source)
}

// parseFile parses a single suite file.
func (p *Parser) parseFile(ctx context.Context, parser *hclparse.Parser, path string) (*parsing.SuiteData, error) {
	data, err := p.decodeFile(parser, path)
	if err != nil {
		return nil, err
	}
	data.Name = formatName(strings.TrimSuffix(filepath.Base(path), Extension))
	data.Source = path

	ctxlog.FromContext(ctx).Debug("Parsed suite file.",
		"path", path,
		"variables", len(data.Variables),
		"keywords", len(data.Keywords),
		"tests", len(data.Tests),
	)
	return data, nil
}

// parseDirectory parses a directory suite and, recursively, its children.
func (p *Parser) parseDirectory(ctx context.Context, parser *hclparse.Parser, dir string) (*parsing.SuiteData, error) {
	logger := ctxlog.FromContext(ctx)

	data := &parsing.SuiteData{Settings: &parsing.SettingTable{}}
	initPath := filepath.Join(dir, InitFile)
	if exists, err := afero.Exists(p.fs, initPath); err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", initPath, err)
	} else if exists {
		initData, err := p.decodeFile(parser, initPath)
		if err != nil {
			return nil, err
		}
		if len(initData.Tests) > 0 {
			return nil, fmt.Errorf("failed to decode HCL file %s: test blocks are not allowed in suite initialization files", initPath)
		}
		data = initData
		logger.Debug("Parsed suite initialization file.", "path", initPath)
	}
	data.Name = formatName(filepath.Base(filepath.Clean(dir)))
	data.Source = dir

	files, dirs, err := fsutil.Entries(p.fs, dir, Extension)
	if err != nil {
		return nil, err
	}

	type entry struct {
		name  string
		isDir bool
	}
	entries := make([]entry, 0, len(files)+len(dirs))
	for _, name := range files {
		entries = append(entries, entry{name: name})
	}
	for _, name := range dirs {
		entries = append(entries, entry{name: name, isDir: true})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	for _, e := range entries {
		path := filepath.Join(dir, e.name)
		if !e.isDir {
			child, err := p.parseFile(ctx, parser, path)
			if err != nil {
				return nil, err
			}
			data.Children = append(data.Children, child)
			continue
		}

		hasSuites, err := fsutil.HasFiles(p.fs, path, Extension)
		if err != nil {
			return nil, err
		}
		if !hasSuites {
			logger.Debug("Skipping directory without suite files.", "path", path)
			continue
		}
		child, err := p.parseDirectory(ctx, parser, path)
		if err != nil {
			return nil, err
		}
		data.Children = append(data.Children, child)
	}

	logger.Debug("Parsed suite directory.", "path", dir, "children", len(data.Children))
	return data, nil
}

// decodeFile reads and decodes one HCL file.
func (p *Parser) decodeFile(parser *hclparse.Parser, path string) (*parsing.SuiteData, error) {
	src, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file %s: %w", path, err)
	}

	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	data, diags := decodeSuiteBody(file.Body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return data, nil
}

// formatName turns a file or directory base name into a suite name. An
// ordering prefix ending with "__" is dropped, underscores become spaces and
// an all-lowercase name gets its words capitalized.
func formatName(base string) string {
	name := base
	if i := strings.Index(name, "__"); i >= 0 {
		name = name[i+2:]
	}
	name = strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
	if !isLower(name) {
		return name
	}
	words := strings.Split(name, " ")
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if size > 0 {
			words[i] = string(unicode.ToUpper(r)) + word[size:]
		}
	}
	return strings.Join(words, " ")
}

// isLower reports whether s has at least one letter and no uppercase ones.
func isLower(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

var _ parsing.Parser = (*Parser)(nil)
