package sessions

// Jar is a read-only view of a request's verified cookie values.
type Jar interface {
	Get(name string) (string, bool)
}

// MutableJar is a Jar that can also change cookies for the rest of the request.
type MutableJar interface {
	Jar
	Set(name, value string)
	Remove(name string)
}

// MapJar is an in-memory MutableJar.
type MapJar struct {
	values map[string]string
}

var _ MutableJar = (*MapJar)(nil)

// NewMapJar returns a jar holding a copy of values.
func NewMapJar(values map[string]string) *MapJar {
	j := &MapJar{values: make(map[string]string, len(values))}
	for k, v := range values {
		j.values[k] = v
	}
	return j
}

// Values returns a copy of the jar contents.
func (j *MapJar) Values() map[string]string {
	out := make(map[string]string, len(j.values))
	for k, v := range j.values {
		out[k] = v
	}
	return out
}

func (j *MapJar) Get(name string) (string, bool) {
	v, ok := j.values[name]
	return v, ok
}

func (j *MapJar) Set(name, value string) {
	j.values[name] = value
}

func (j *MapJar) Remove(name string) {
	delete(j.values, name)
}
