package cropvariantsbuilder

// Ratio is one allowed aspect ratio: a key such as "16:9" and an opaque
// descriptor, typically the display label shown to editors.
type Ratio struct {
	Key   string
	Label any
}

// ratioSet keeps aspect ratios keyed and in insertion order.
type ratioSet struct {
	order  []string
	labels map[string]any
}

func newRatioSet() *ratioSet {
	return &ratioSet{labels: make(map[string]any)}
}

func (r *ratioSet) Len() int {
	return len(r.order)
}

func (r *ratioSet) Has(key string) bool {
	_, ok := r.labels[key]
	return ok
}

func (r *ratioSet) Add(key string, label any) {
	if !r.Has(key) {
		r.order = append(r.order, key)
	}
	r.labels[key] = label
}

func (r *ratioSet) Remove(key string) {
	if !r.Has(key) {
		return
	}
	delete(r.labels, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *ratioSet) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// ToMap copies the set into a plain mapping for the output record.
func (r *ratioSet) ToMap() map[string]any {
	m := make(map[string]any, len(r.labels))
	for k, v := range r.labels {
		m[k] = v
	}
	return m
}
