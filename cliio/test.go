package cliio

// TestStreams is a shared context backed by independent in-memory buffers,
// with helpers for seeding input and inspecting what a command wrote.
//
// The embedded Streams is used exactly like the standard flavor, so the
// code under test never knows the difference:
//
//	streams := cliio.NewTest()
//	streams.SetInput([]byte("example"))
//
//	err := run(streams.Streams)
//
//	assert.Equal(t, []byte("Hello, example!\n"), streams.OutputBytes())
type TestStreams struct {
	*Streams
}

// NewTest creates a shared context backed by in-memory buffers.
func NewTest() *TestStreams {
	return &TestStreams{
		Streams: New(Memory(), Memory(), Memory()),
	}
}

// Reset truncates all three buffers.
func (t *TestStreams) Reset() {
	t.ResetError()
	t.ResetInput()
	t.ResetOutput()
}

// ResetError truncates the error output buffer.
func (t *TestStreams) ResetError() {
	stream := t.err.Lock()
	defer t.err.Unlock()

	stream.Reset()
}

// ResetInput truncates the input buffer and rewinds it to the start.
func (t *TestStreams) ResetInput() {
	stream := t.in.Lock()
	defer t.in.Unlock()

	stream.Reset()
}

// ResetOutput truncates the global output buffer.
func (t *TestStreams) ResetOutput() {
	stream := t.out.Lock()
	defer t.out.Unlock()

	stream.Reset()
}

// SetInput replaces the contents of the input buffer and rewinds it so the
// next read starts at the beginning.
func (t *TestStreams) SetInput(contents []byte) {
	stream := t.in.Lock()
	defer t.in.Unlock()

	stream.Reset()

	if _, err := stream.Write(contents); err != nil {
		panic(err)
	}

	stream.pos = 0
}

// ErrorBytes returns a snapshot of the error output buffer.
func (t *TestStreams) ErrorBytes() []byte {
	stream := t.err.Lock()
	defer t.err.Unlock()

	return stream.Bytes()
}

// InputBytes returns a snapshot of the input buffer.
func (t *TestStreams) InputBytes() []byte {
	stream := t.in.Lock()
	defer t.in.Unlock()

	return stream.Bytes()
}

// OutputBytes returns a snapshot of the global output buffer.
func (t *TestStreams) OutputBytes() []byte {
	stream := t.out.Lock()
	defer t.out.Unlock()

	return stream.Bytes()
}
