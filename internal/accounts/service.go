package accounts

import (
	"sort"
	"strings"

	"github.com/plview-dev/plview/internal/model"
)

// Service provides in-memory lookup over the account forest derived from a
// ledger export. It is immutable after construction; reloading the export
// builds a fresh Service.
type Service struct {
	byCode      map[string]model.Account
	codes       []string // all codes, sorted
	leavesFirst []string // deepest accounts first; safe roll-up order
}

// buildNode is the mutable form of an account during forest construction.
type buildNode struct {
	acct     model.Account
	children map[string]bool
}

// BuildForest derives the account forest from the distinct accountFullName
// values of a load, in first-seen order. Each colon-delimited path segment
// becomes a node keyed by its numeric code; ancestors referenced by a path
// but never seen as their own row are materialized from their segment label.
// Segments without a code, or with codes outside the P&L band, are ignored.
func BuildForest(fullNames []string) *Service {
	nodes := make(map[string]*buildNode)

	for _, fullName := range fullNames {
		parts := strings.Split(fullName, ":")
		parent := ""
		for i, part := range parts {
			code := ExtractCode(part)
			if code == "" || !IsPLCode(code) {
				parent = ""
				continue
			}

			n, ok := nodes[code]
			if !ok {
				n = &buildNode{
					acct: model.Account{
						Code: code,
						Name: LeafName(part),
						// The node's full name is the path up to and
						// including its own segment.
						FullName:   strings.TrimSpace(strings.Join(parts[:i+1], ":")),
						ParentCode: parent,
						Section:    Classify(code),
					},
					children: make(map[string]bool),
				}
				nodes[code] = n
			}
			if parent != "" && parent != code {
				nodes[parent].children[code] = true
				if n.acct.ParentCode == "" {
					n.acct.ParentCode = parent
				}
			}
			parent = code
		}
	}

	return freeze(nodes)
}

// freeze converts build nodes into the immutable Service form: sorted child
// lists, computed depths, and the cached leaves-first order.
func freeze(nodes map[string]*buildNode) *Service {
	var depthOf func(code string, seen map[string]bool) int
	depthOf = func(code string, seen map[string]bool) int {
		parent := nodes[code].acct.ParentCode
		if parent == "" || nodes[parent] == nil || seen[code] {
			return 0
		}
		seen[code] = true
		return 1 + depthOf(parent, seen)
	}

	byCode := make(map[string]model.Account, len(nodes))
	codes := make([]string, 0, len(nodes))
	for code, n := range nodes {
		children := make([]string, 0, len(n.children))
		for c := range n.children {
			children = append(children, c)
		}
		sort.Strings(children)

		acct := n.acct
		acct.Children = children
		acct.Depth = depthOf(code, map[string]bool{})
		if acct.ParentCode != "" && nodes[acct.ParentCode] == nil {
			// Dangling parent reference: treat as a root.
			acct.ParentCode = ""
		}
		byCode[code] = acct
		codes = append(codes, code)
	}
	sort.Strings(codes)

	leavesFirst := make([]string, len(codes))
	copy(leavesFirst, codes)
	sort.SliceStable(leavesFirst, func(i, j int) bool {
		return byCode[leavesFirst[i]].Depth > byCode[leavesFirst[j]].Depth
	})

	return &Service{byCode: byCode, codes: codes, leavesFirst: leavesFirst}
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists in the forest.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// All returns all accounts sorted by code.
func (s *Service) All() []model.Account {
	result := make([]model.Account, 0, len(s.codes))
	for _, code := range s.codes {
		result = append(result, s.byCode[code])
	}
	return result
}

// Roots returns all top-level accounts sorted by code.
func (s *Service) Roots() []model.Account {
	var result []model.Account
	for _, code := range s.codes {
		if a := s.byCode[code]; a.ParentCode == "" {
			result = append(result, a)
		}
	}
	return result
}

// BySection returns the root accounts of the given section, sorted by code.
func (s *Service) BySection(section model.PLSection) []model.Account {
	var result []model.Account
	for _, a := range s.Roots() {
		if a.Section == section {
			result = append(result, a)
		}
	}
	return result
}

// LeavesFirst returns all codes ordered deepest-first. Processing accounts in
// this order guarantees every child is visited before its parent, so a single
// bottom-up pass suffices for roll-up.
func (s *Service) LeavesFirst() []string {
	return s.leavesFirst
}

// Map returns a code->Account snapshot of the whole forest.
func (s *Service) Map() map[string]model.Account {
	result := make(map[string]model.Account, len(s.byCode))
	for code, a := range s.byCode {
		result[code] = a
	}
	return result
}

// Len returns the number of accounts in the forest.
func (s *Service) Len() int {
	return len(s.byCode)
}
