package notify

import (
	"errors"
	"io"

	"scan-verifier/core/reconcile"

	"go.uber.org/zap"
)

// LogNotifier writes outcomes to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier logging through logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Observe logs one outcome. Blocked and excess scans are logged as warnings.
func (n *LogNotifier) Observe(o reconcile.Outcome) error {
	fields := []zap.Field{
		zap.String("kind", string(o.Kind)),
		zap.String("value", o.Value),
	}
	if o.Event != nil {
		fields = append(fields, zap.String("status", o.Event.ResolvedStatus))
		if row, ok := o.Event.Consumed(); ok {
			fields = append(fields, zap.Int("row", row))
		}
		if o.Event.MatchedField != "" {
			fields = append(fields, zap.String("field", string(o.Event.MatchedField)))
		}
	}
	if phrase := Announcement(o); phrase != "" {
		fields = append(fields, zap.String("announce", phrase))
	}

	switch o.Kind {
	case reconcile.OutcomeBlocked, reconcile.OutcomeExcess:
		n.logger.Warn("Scan", fields...)
	case reconcile.OutcomeIgnored:
		n.logger.Debug("Scan ignored", fields...)
	default:
		n.logger.Info("Scan", fields...)
	}
	return nil
}

// Multi notifies several observers in order.
type Multi []reconcile.Observer

// Observe calls every observer and joins their errors.
func (m Multi) Observe(o reconcile.Outcome) error {
	var errs []error
	for _, obs := range m {
		if obs == nil {
			continue
		}
		if err := obs.Observe(o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Func adapts a function to reconcile.Observer.
type Func func(reconcile.Outcome) error

func (f Func) Observe(o reconcile.Outcome) error {
	return f(o)
}

// Bell returns an observer that writes the terminal bell to w for every
// outcome with a destructive toast, so an operator looking at the parcel
// rather than the screen still hears a rejected scan.
func Bell(w io.Writer) Func {
	return func(o reconcile.Outcome) error {
		if t, ok := ToastFor(o); !ok || t.Variant != VariantDestructive {
			return nil
		}
		_, err := io.WriteString(w, "\a")
		return err
	}
}
