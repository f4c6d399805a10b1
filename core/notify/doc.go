// Package notify turns scan outcomes into operator feedback: a short spoken
// phrase and a toast message with a title, description and variant.
//
// Notifiers implement reconcile.Observer and are attached to the engine.
// LogNotifier writes every outcome through zap; Multi fans one outcome out to
// several notifiers.
package notify
