package notify

import (
	"fmt"

	"scan-verifier/core/manifest"
	"scan-verifier/core/reconcile"
)

// Toast variants.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Toast is a short on-screen message for one outcome.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// Announcement returns the phrase spoken for an outcome, or "" when the
// outcome is silent.
func Announcement(o reconcile.Outcome) string {
	switch o.Category() {
	case reconcile.CategoryApproved:
		return "ОК"
	case reconcile.CategoryRejected:
		return "недопущено"
	case reconcile.CategoryOverLimit:
		return "перелимит"
	case reconcile.CategoryInspection:
		return "досмотр"
	case reconcile.StatusExcess:
		return "излишки"
	default:
		return ""
	}
}

// ToastFor builds the toast for an outcome. Ignored outcomes have none.
func ToastFor(o reconcile.Outcome) (Toast, bool) {
	switch o.Kind {
	case reconcile.OutcomeBlocked:
		return Toast{
			Title:       "❌ Не начато сканирование",
			Description: "Нажмите кнопку 'Начать сканирование' перед началом работы",
			Variant:     VariantDestructive,
		}, true
	case reconcile.OutcomeExcess:
		t := Toast{Title: "⚠️ Излишки", Variant: VariantDestructive}
		if o.Event != nil && o.Event.MatchedRecord != nil {
			t.Description = fmt.Sprintf("Все строки для этого %s уже обработаны", fieldLabel(o.Event.MatchedField))
		} else {
			t.Description = fmt.Sprintf("Значение %s не найдено в базе - отмечено как излишки", o.Value)
		}
		return t, true
	case reconcile.OutcomeMatched:
		return matchedToast(o), true
	default:
		return Toast{}, false
	}
}

func matchedToast(o reconcile.Outcome) Toast {
	switch o.Category() {
	case reconcile.CategoryRejected:
		return Toast{"❌ Недопущенные", fmt.Sprintf("Код %s - недопущен к отправке", o.Value), VariantDestructive}
	case reconcile.CategoryOverLimit:
		return Toast{"❌ Перелимит", fmt.Sprintf("Код %s - превышен лимит", o.Value), VariantDestructive}
	case reconcile.CategoryInspection:
		return Toast{"⚠️ Досмотр", fmt.Sprintf("Код %s - требуется досмотр", o.Value), VariantDestructive}
	case reconcile.CategoryApproved:
		return Toast{"✅ Допущенные", fmt.Sprintf("Код %s - допущен к отправке", o.Value), VariantDefault}
	default:
		return Toast{"ℹ️ Статус", fmt.Sprintf("Код %s - %s", o.Value, o.Category()), VariantDefault}
	}
}

// fieldLabel names a field in the genitive case for toast descriptions.
func fieldLabel(f manifest.Field) string {
	switch f {
	case manifest.FieldShipmentID:
		return "ID отправления"
	case manifest.FieldShipmentNumber:
		return "номера отправления"
	case manifest.FieldBoxNumber:
		return "номера коробки"
	default:
		return "штрихкода"
	}
}
