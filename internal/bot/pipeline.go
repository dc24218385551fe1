package bot

// Result is the verdict an interceptor passes back to the pipeline.
type Result int

const (
	// Pass hands the event to the next interceptor, or to the router when
	// the chain is exhausted.
	Pass Result = iota
	// Handled stops the pipeline; the interceptor produced the response
	// itself. The session is still persisted.
	Handled
)

// Interceptor examines an event before routing. Interceptors run in the
// order they were installed and may rewrite the context (language
// resolution) or answer in place of a handler (gates).
type Interceptor interface {
	Intercept(c *Context) (Result, error)
}

// InterceptorFunc adapts a function to the Interceptor interface.
type InterceptorFunc func(c *Context) (Result, error)

// Intercept implements Interceptor.
func (f InterceptorFunc) Intercept(c *Context) (Result, error) { return f(c) }

func (e *Engine) runPipeline(c *Context) (Result, error) {
	for _, it := range e.pipeline {
		res, err := it.Intercept(c)
		if err != nil {
			return Handled, err
		}
		if res == Handled {
			return Handled, nil
		}
	}
	return Pass, nil
}
