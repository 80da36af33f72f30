package automaton

import (
	"encoding/json"

	"github.com/enetx/g"
)

// TableView is the serializable representation of a Table.
// States and events are written using their formatted names.
type TableView struct {
	Initial  g.String          `json:"initial"`
	Current  g.String          `json:"current,omitempty"`
	States   g.Slice[g.String] `json:"states"`
	Events   g.Slice[g.String] `json:"events"`
	Terminal g.Slice[g.String] `json:"terminal"`
	Edges    g.Slice[EdgeView] `json:"edges"`
}

// EdgeView is the serializable representation of an Edge.
type EdgeView struct {
	From   g.String `json:"from"`
	Event  g.String `json:"event"`
	To     g.String `json:"to"`
	Action bool     `json:"action,omitempty"`
}

// View returns the serializable representation of the table.
func (t *Table[S, E]) View() TableView {
	view := TableView{
		Initial:  name(t.initial),
		States:   g.NewSlice[g.String](),
		Events:   g.NewSlice[g.String](),
		Terminal: g.NewSlice[g.String](),
		Edges:    g.NewSlice[EdgeView](),
	}

	if t.current.IsSome() {
		view.Current = name(t.current.Some())
	}

	for s := range t.states.Iter() {
		view.States.Push(name(s))
	}

	for e := range t.events.Iter() {
		view.Events.Push(name(e))
	}

	for s := range t.Terminal().Iter() {
		view.Terminal.Push(name(s))
	}

	for edge := range t.edges.Iter() {
		view.Edges.Push(EdgeView{
			From:   name(edge.From),
			Event:  name(edge.Event),
			To:     name(edge.To),
			Action: edge.Action,
		})
	}

	return view
}

// MarshalJSON implements the json.Marshaler interface.
func (t *Table[S, E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.View())
}
