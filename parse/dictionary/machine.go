package dictionary

// =========================
// Section Grammar
// =========================

// State is a position in the section grammar.
type State uint8

const (
	StateEmpty State = iota
	StateDictionaryReceived
	StateLanguagesReceived
	StateLevelReceived
	StateIdItemsReceived
	StateItemReceived
	StateValueSetReceived
	StateRecordReceived
	StateRecordItemReceived
	StateRecordValueSetReceived
	StateRelationReceived
	StateCompleted
)

var stateNames = [...]string{
	StateEmpty:                  "empty",
	StateDictionaryReceived:     "dictionary_received",
	StateLanguagesReceived:      "languages_received",
	StateLevelReceived:          "level_received",
	StateIdItemsReceived:        "iditems_received",
	StateItemReceived:           "item_received",
	StateValueSetReceived:       "valueset_received",
	StateRecordReceived:         "record_received",
	StateRecordItemReceived:     "record_item_received",
	StateRecordValueSetReceived: "record_valueset_received",
	StateRelationReceived:       "relation_received",
	StateCompleted:              "completed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal reports whether s ends a successful parse.
func (s State) Terminal() bool {
	return s == StateCompleted
}

// Trigger is a section name, or the synthetic end of input.
type Trigger string

const (
	TriggerDictionary Trigger = "Dictionary"
	TriggerLanguages  Trigger = "Languages"
	TriggerLevel      Trigger = "Level"
	TriggerIdItems    Trigger = "IdItems"
	TriggerItem       Trigger = "Item"
	TriggerValueSet   Trigger = "ValueSet"
	TriggerRecord     Trigger = "Record"
	TriggerRelation   Trigger = "Relation"
	TriggerEOF        Trigger = "EOF"
)

type edge struct {
	trigger Trigger
	source  State
}

// transitions is the whole grammar. Anything not listed is rejected.
var transitions = map[edge]State{
	{TriggerDictionary, StateEmpty}: StateDictionaryReceived,

	{TriggerLanguages, StateDictionaryReceived}: StateLanguagesReceived,

	{TriggerLevel, StateLanguagesReceived}:      StateLevelReceived,
	{TriggerLevel, StateDictionaryReceived}:     StateLevelReceived,
	{TriggerLevel, StateRecordValueSetReceived}: StateLevelReceived,

	{TriggerIdItems, StateLevelReceived}: StateIdItemsReceived,

	{TriggerItem, StateIdItemsReceived}:  StateItemReceived,
	{TriggerItem, StateItemReceived}:     StateItemReceived,
	{TriggerItem, StateValueSetReceived}: StateItemReceived,

	{TriggerValueSet, StateItemReceived}:     StateValueSetReceived,
	{TriggerValueSet, StateValueSetReceived}: StateValueSetReceived,

	{TriggerRecord, StateValueSetReceived}: StateRecordReceived,
	{TriggerRecord, StateItemReceived}:     StateRecordReceived,

	{TriggerItem, StateRecordReceived}:         StateRecordItemReceived,
	{TriggerItem, StateRecordItemReceived}:     StateRecordItemReceived,
	{TriggerItem, StateRecordValueSetReceived}: StateRecordItemReceived,

	{TriggerValueSet, StateRecordItemReceived}:     StateRecordValueSetReceived,
	{TriggerValueSet, StateRecordValueSetReceived}: StateRecordValueSetReceived,

	{TriggerRecord, StateRecordItemReceived}:     StateRecordReceived,
	{TriggerRecord, StateRecordValueSetReceived}: StateRecordReceived,

	{TriggerRelation, StateRecordValueSetReceived}: StateRelationReceived,
	{TriggerRelation, StateRelationReceived}:       StateRelationReceived,

	{TriggerEOF, StateRecordValueSetReceived}: StateCompleted,
	{TriggerEOF, StateRelationReceived}:       StateCompleted,
	{TriggerEOF, StateRecordItemReceived}:     StateCompleted,
}

// Next returns the state that trigger leads to from s.
func (s State) Next(t Trigger) (State, bool) {
	dest, ok := transitions[edge{t, s}]
	return dest, ok
}

// machine walks the grammar and hands every accepted section to the
// builder action registered for the destination state.
type machine struct {
	state   State
	builder *builder
}

func newMachine(b *builder) *machine {
	return &machine{state: StateEmpty, builder: b}
}

// fire applies one trigger. A rejected trigger leaves the state unchanged.
func (m *machine) fire(t Trigger, sec *Section) (State, error) {
	dest, ok := m.state.Next(t)
	if !ok {
		return m.state, &ParseError{Kind: ErrIllegalTransition, Section: string(t), State: m.state}
	}
	act := actions[dest]
	if err := act(m.builder, sec); err != nil {
		return m.state, err
	}
	m.state = dest
	return dest, nil
}
