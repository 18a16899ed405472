package jsonvalue

// Member is one key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered JSON object. It has no mutating methods; With and
// Without return modified copies.
type Object struct {
	entries []Member
	index   map[string]int
}

// NewObject builds an object from members. A repeated key keeps the position
// of its first occurrence and the value of its last one.
func NewObject(members ...Member) *Object {
	b := NewObjectBuilder(len(members))
	for _, m := range members {
		b.Set(m.Key, m.Value)
	}
	return b.Build()
}

func (o *Object) members() []Member {
	if o == nil {
		return nil
	}
	return o.entries
}

func (o *Object) Len() int {
	return len(o.members())
}

func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[i].Value, true
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for _, m := range o.members() {
		keys = append(keys, m.Key)
	}
	return keys
}

// Members returns a copy of the entries in insertion order.
func (o *Object) Members() []Member {
	return append([]Member(nil), o.members()...)
}

// Range calls f for each member in order until f returns false.
func (o *Object) Range(f func(key string, v Value) bool) {
	for _, m := range o.members() {
		if !f(m.Key, m.Value) {
			return
		}
	}
}

// With returns a copy where key is bound to v. An existing key keeps its
// position; a new key is appended.
func (o *Object) With(key string, v Value) *Object {
	b := NewObjectBuilder(o.Len() + 1)
	for _, m := range o.members() {
		b.Set(m.Key, m.Value)
	}
	b.Set(key, v)
	return b.Build()
}

// Without returns a copy that lacks key. If key is absent the receiver is
// returned as is.
func (o *Object) Without(key string) *Object {
	if !o.Has(key) {
		return o
	}
	b := NewObjectBuilder(o.Len())
	for _, m := range o.members() {
		if m.Key != key {
			b.Set(m.Key, m.Value)
		}
	}
	return b.Build()
}

// ObjectBuilder accumulates members for a new Object. A builder must not be
// used after Build.
type ObjectBuilder struct {
	obj *Object
}

func NewObjectBuilder(capacity int) *ObjectBuilder {
	return &ObjectBuilder{
		obj: &Object{
			entries: make([]Member, 0, capacity),
			index:   make(map[string]int, capacity),
		},
	}
}

// Set binds key to v, last write wins.
func (b *ObjectBuilder) Set(key string, v Value) *ObjectBuilder {
	if i, ok := b.obj.index[key]; ok {
		b.obj.entries[i].Value = v
		return b
	}
	b.obj.index[key] = len(b.obj.entries)
	b.obj.entries = append(b.obj.entries, Member{Key: key, Value: v})
	return b
}

func (b *ObjectBuilder) Build() *Object {
	o := b.obj
	b.obj = nil
	return o
}
