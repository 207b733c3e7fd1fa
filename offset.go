package dotaccess

// Offset is index-style sugar over Data: missing values read as nil and
// lookups report presence as a plain bool.
type Offset struct {
	data *Data
}

// Offset returns the index-style adapter for d.
func (d *Data) Offset() Offset {
	return Offset{data: d}
}

// Exists reports whether a value exists at path. Invalid paths report false.
func (o Offset) Exists(path string) bool {
	ok, err := o.data.Has(path)

	return err == nil && ok
}

// Get returns the value at path or nil.
func (o Offset) Get(path string) any {
	v, _ := o.data.GetOr(path, nil)

	return v
}

// Set stores value at path.
func (o Offset) Set(path string, value any) error {
	return o.data.Set(path, value)
}

// Unset removes the value at path.
func (o Offset) Unset(path string) error {
	return o.data.Remove(path)
}
