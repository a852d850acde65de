package filters

import "iter"
import "strings"
import "github.com/cwacek/irtokens/tokenizer"
import log "github.com/cihub/seelog"

/*
A filter reads a sequence of tokens and rewrites, expands or drops each one.
Filters can be chained together, in which case they are applied in the order
they were connected.
*/
type Filter interface {
	GetId() string

	//Get the filter at the head of the chain
	Head() Filter
	Parent() Filter
	SetParent(Filter)

	//Connect :f: after this filter. Returns the bottom of the chain (i.e. f)
	Connect(f Filter, force bool) Filter

	// Apply filters a single token. A nil or empty result drops it.
	Apply(tokenizer.Token) []tokenizer.Token

	// Pull streams input through every filter from the head of the chain
	// down to this one.
	Pull(input iter.Seq[tokenizer.Token]) iter.Seq[tokenizer.Token]

	//Write the filter chain to string
	String() string
	// Write just this filter to string
	Serialize() string
}

// FilterPlumbing carries the chain bookkeeping shared by every filter. An
// implementation embeds it and points self at itself.
type FilterPlumbing struct {
	Id string

	parent Filter
	self   Filter
}

func (fc *FilterPlumbing) GetId() string {
	return fc.Id
}

func (fc *FilterPlumbing) Head() Filter {
	if fc.parent != nil {
		return fc.parent.Head()
	}
	return fc.self
}

func (fc *FilterPlumbing) Parent() Filter {
	return fc.parent
}

func (fc *FilterPlumbing) SetParent(f Filter) {
	fc.parent = f
}

func (fc *FilterPlumbing) Connect(f Filter, force bool) Filter {
	log.Debugf("Connecting %s after %s", f.Serialize(), fc.Id)

	if f.Parent() != nil && !force {
		panic("Asked to connect to a filter with an existing input, without forcing")
	}

	f.SetParent(fc.self)
	return f
}

func (fc *FilterPlumbing) Pull(input iter.Seq[tokenizer.Token]) iter.Seq[tokenizer.Token] {
	if fc.parent != nil {
		input = fc.parent.Pull(input)
	}

	return func(yield func(tokenizer.Token) bool) {
		for tok := range input {
			for _, out := range fc.self.Apply(tok) {
				if !yield(out) {
					return
				}
			}
		}
	}
}

func (fc *FilterPlumbing) String() string {
	parts := make([]string, 0)

	if fc.parent != nil {
		parts = append(parts, fc.parent.String())
	}

	parts = append(parts, fc.self.Serialize())

	return strings.Join(parts, " -> ")
}

func (fc *FilterPlumbing) Serialize() string {
	return fc.Id
}

// Chain connects filters in order and returns the last one, ready to Pull.
// Nil entries are skipped. Chain returns nil when given no filters.
func Chain(filters ...Filter) Filter {
	var tail Filter
	for _, f := range filters {
		if f == nil {
			continue
		}
		if tail != nil {
			tail = tail.Connect(f, false)
		} else {
			tail = f
		}
	}
	return tail
}

// Run streams seq through the chain ending at f. A nil f passes seq through.
func Run(f Filter, seq iter.Seq[tokenizer.Token]) iter.Seq[tokenizer.Token] {
	if f == nil {
		return seq
	}
	return f.Pull(seq)
}
