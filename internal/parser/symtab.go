package parser

// SymbolTable assigns each distinct variable name the next unused index, starting at 0.
type SymbolTable struct {
	index map[string]int
	names []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// Intern returns the index of name, assigning a new one on first sight.
func (s *SymbolTable) Intern(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	i := len(s.names)
	s.index[name] = i
	s.names = append(s.names, name)
	return i
}

func (s *SymbolTable) Lookup(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

func (s *SymbolTable) Len() int {
	return len(s.names)
}

// Names returns a copy of the interned names ordered by index.
func (s *SymbolTable) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
