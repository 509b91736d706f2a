package dictionary

import (
	"errors"
)

// =========================
// Tree Building
// =========================

// builder owns the tree for one parse and the cursors that point at the most
// recently opened Level, Record and Item. Every action only appends.
type builder struct {
	dict   *Dictionary
	level  *Level
	record *Record
	// last top-level Item of the current Record
	item *Item
	// last Level id item
	idItem *Item
	built  bool
}

type action func(*builder, *Section) error

// actions is keyed by destination state, so the same section name can build
// different things depending on where it occurs (an Item after IdItems is an
// id item, an Item after Record is a record item).
var actions = map[State]action{
	StateDictionaryReceived:     (*builder).dictionaryReceived,
	StateLanguagesReceived:      (*builder).languagesReceived,
	StateLevelReceived:          (*builder).levelReceived,
	StateIdItemsReceived:        (*builder).idItemsReceived,
	StateItemReceived:           (*builder).itemReceived,
	StateValueSetReceived:       (*builder).valueSetReceived,
	StateRecordReceived:         (*builder).recordReceived,
	StateRecordItemReceived:     (*builder).recordItemReceived,
	StateRecordValueSetReceived: (*builder).recordValueSetReceived,
	StateRelationReceived:       (*builder).relationReceived,
	StateCompleted:              (*builder).completed,
}

var errNoParent = errors.New("no open parent")

func (b *builder) dictionaryReceived(sec *Section) error {
	values, err := CastAttributes(sec.Attributes)
	if err != nil {
		return err
	}
	d := newDictionary()
	d.apply(values)
	b.dict = d
	return nil
}

func (b *builder) languagesReceived(sec *Section) error {
	values, err := CastAttributes(sec.Attributes)
	if err != nil {
		return err
	}
	langs := NewAttributes()
	for _, v := range values {
		langs.AppendAll(v.Key, castedOrRaw(v))
	}
	b.dict.Languages = langs
	return nil
}

func (b *builder) levelReceived(sec *Section) error {
	values, err := CastAttributes(sec.Attributes)
	if err != nil {
		return err
	}
	l := newLevel()
	l.apply(values)
	b.dict.Levels = append(b.dict.Levels, l)
	b.level = l
	b.record, b.item, b.idItem = nil, nil, nil
	return nil
}

// idItemsReceived only opens the id item list of the current Level.
func (b *builder) idItemsReceived(*Section) error {
	b.level.IdItems = []*Item{}
	return nil
}

func (b *builder) itemReceived(sec *Section) error {
	it, err := buildItem(sec)
	if err != nil {
		return err
	}
	b.level.IdItems = append(b.level.IdItems, it)
	b.idItem = it
	return nil
}

func (b *builder) valueSetReceived(sec *Section) error {
	vs, err := buildValueSet(sec)
	if err != nil {
		return err
	}
	b.idItem.ValueSets = append(b.idItem.ValueSets, vs)
	return nil
}

func (b *builder) recordReceived(sec *Section) error {
	values, err := CastAttributes(sec.Attributes)
	if err != nil {
		return err
	}
	r := newRecord()
	r.apply(values)
	b.level.Records = append(b.level.Records, r)
	b.record = r
	b.item = nil
	return nil
}

// recordItemReceived appends a SubItem to the preceding sibling instead of
// to the Record.
func (b *builder) recordItemReceived(sec *Section) error {
	it, err := buildItem(sec)
	if err != nil {
		return err
	}
	if it.IsSubItem() {
		if b.item == nil {
			return &ParseError{Kind: ErrPlacement, Err: errNoParent, Key: "ItemType"}
		}
		b.item.SubItems = append(b.item.SubItems, it)
		return nil
	}
	b.record.Items = append(b.record.Items, it)
	b.item = it
	return nil
}

// recordValueSetReceived targets the last SubItem when the current Item has
// any, and the Item itself otherwise.
func (b *builder) recordValueSetReceived(sec *Section) error {
	vs, err := buildValueSet(sec)
	if err != nil {
		return err
	}
	target := b.item
	if n := len(target.SubItems); n > 0 {
		target = target.SubItems[n-1]
	}
	target.ValueSets = append(target.ValueSets, vs)
	return nil
}

// relationReceived keeps the block verbatim; relations are not cast or
// defaulted.
func (b *builder) relationReceived(sec *Section) error {
	raw := NewAttributes()
	for _, k := range sec.Attributes.Keys() {
		raw.AppendAll(k, sec.Attributes.Values(k))
	}
	b.dict.Relations = append(b.dict.Relations, raw)
	return nil
}

func (b *builder) completed(*Section) error {
	b.built = true
	return nil
}

func buildItem(sec *Section) (*Item, error) {
	values, err := CastAttributes(sec.Attributes)
	if err != nil {
		return nil, err
	}
	it := newItem()
	it.apply(values)
	return it, nil
}

func buildValueSet(sec *Section) (*ValueSet, error) {
	values, err := CastAttributes(sec.Attributes)
	if err != nil {
		return nil, err
	}
	vs := newValueSet()
	vs.apply(values)
	return vs, nil
}

// castedOrRaw renders a cast scalar back to text so it can live in an
// Attributes list.
func castedOrRaw(v Value) []string {
	if s, ok := v.V.(string); ok {
		return []string{s}
	}
	return v.Raw
}
