package activities

import (
	"fmt"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

// focusNamesAr are the clinical Arabic names of the six focuses, used in
// the therapist register.
var focusNamesAr = map[types.TherapeuticFocus]string{
	types.FocusSensoryRegulation:     "التنظيم الحسي",
	types.FocusMotorPlanning:         "التخطيط الحركي",
	types.FocusExecutiveFunction:     "الوظائف التنفيذية",
	types.FocusFineMotor:             "المهارات الحركية الدقيقة",
	types.FocusGrossMotor:            "المهارات الحركية الكبيرة",
	types.FocusBilateralCoordination: "التناسق الثنائي",
}

// activityTemplates hold the phrasing variants per focus. %s is the Arabic
// display name of the element.
var activityTemplates = map[types.TherapeuticFocus][]string{
	types.FocusGrossMotor: {
		"شجع الطفل على المشي نحو %s ثم العودة بخطوات ثابتة",
		"اطلب من الطفل القفز في مكانه ثلاث مرات بجانب %s",
		"نظم لعبة قصيرة يدور فيها الطفل حول %s ببطء ثم بسرعة",
	},
	types.FocusFineMotor: {
		"دع الطفل يلتقط %s بأطراف أصابعه ويضعه في مكانه المخصص",
		"اطلب من الطفل تحريك %s بين أصابعه ببطء وتركيز",
		"شجع الطفل على ترتيب %s في صف مستقيم ثم في دائرة",
	},
	types.FocusSensoryRegulation: {
		"اجلس مع الطفل قرب %s ودعه يتحسس ملمسه بهدوء",
		"اطلب من الطفل إغماض عينيه ولمس %s ثم وصف ملمسه",
		"خصص دقيقة هادئة يراقب فيها الطفل %s ويتنفس ببطء",
	},
	types.FocusBilateralCoordination: {
		"اطلب من الطفل الإمساك بـ%s بكلتا يديه وتمريره من يد إلى يد",
		"شجع الطفل على حمل %s بيديه معا والسير به بحذر",
		"دع الطفل يثبت %s بيد ويعمل عليه باليد الأخرى",
	},
	types.FocusMotorPlanning: {
		"صمم مسارا بسيطا يلتف فيه الطفل حول %s ثم يعود من جهة أخرى",
		"اطلب من الطفل تخطيط ثلاث خطوات للوصول إلى %s وتنفيذها بالترتيب",
		"العب لعبة المحطات: يتوقف الطفل عند %s ويغير اتجاهه",
	},
	types.FocusExecutiveFunction: {
		"اطلب من الطفل فرز %s حسب اللون أو الحجم",
		"العب لعبة تسلسل: ماذا نفعل قبل وبعد استخدام %s؟",
		"اطلب من الطفل وضع قاعدة بسيطة للعب حول %s وشرحها لك",
	},
}

// safeAlternativeTemplates phrase the activity without moving or
// manipulating the element. Used whenever the element's safety metadata
// requires safe alternatives only, including the validator's pass-through
// pairings.
var safeAlternativeTemplates = map[types.TherapeuticFocus][]string{
	types.FocusGrossMotor: {
		"شجع الطفل على الزحف حول %s ذهابا وإيابا",
		"اطلب من الطفل المشي بخطوات جانبية بين %s والجدار",
		"اجعل الطفل يمد ذراعيه فوق %s دون لمسه للوصول إلى لعبة خفيفة",
	},
	types.FocusSensoryRegulation: {
		"اجلس مع الطفل مستندا إلى %s لدقيقة تهدئة مع تنفس عميق",
		"دع الطفل يلمس سطح %s بكفيه بهدوء دون دفعه",
		"اطلب من الطفل وصف ألوان %s وملمسه وهو جالس على الأرض",
	},
	types.FocusFineMotor: {
		"اطلب من الطفل تتبع حواف %s بإصبعه دون تحريكه",
		"دع الطفل يرسم في الهواء شكل %s بأصابعه",
		"اطلب من الطفل الإشارة إلى تفاصيل %s الصغيرة واحدة واحدة",
	},
	types.FocusBilateralCoordination: {
		"اطلب من الطفل لمس %s بكلتا يديه معا ثم التصفيق",
		"شجع الطفل على التنقل حول %s وذراعاه ممدودتان للتوازن",
		"دع الطفل يضع كفيه على %s ويدفع بلطف دون تحريكه لعد خمس ثوان",
	},
	types.FocusMotorPlanning: {
		"خطط مع الطفل مسارا يلتف حول %s دون دفعه أو تحريكه",
		"اطلب من الطفل اختيار طريقين مختلفين للوصول إلى %s وتجربتهما",
		"العب لعبة الاتجاهات: أمام %s، خلفه، بجانبه",
	},
	types.FocusExecutiveFunction: {
		"اطلب من الطفل عد الأشياء الموجودة فوق %s دون لمسها",
		"العب لعبة الذاكرة: ماذا يوجد حول %s؟ أغمض عينيك وتذكر",
		"اطلب من الطفل وصف %s لشخص لا يراه",
	},
}

// Formatter renders refined activities into Arabic prose. It consumes only
// the refined activity and the display-name map; it needs no lookups into
// the detector or safety layer.
type Formatter struct {
	names map[string]string
}

// NewFormatter creates a formatter with the reasoner's label to Arabic
// display-name map.
func NewFormatter(displayNames map[string]string) *Formatter {
	return &Formatter{names: displayNames}
}

// DisplayName resolves the Arabic display name, falling back to the raw
// label for elements the reasoner admitted via the hedge path.
func (f *Formatter) DisplayName(label string) string {
	if name, ok := f.names[label]; ok && name != "" {
		return name
	}
	return label
}

// FormatActivity renders one activity. The variant index is a pure
// function of the activity's seeds, so the same analysis always produces
// the same sentence.
func (f *Formatter) FormatActivity(a types.RefinedActivity, audience types.Audience) string {
	templates := activityTemplates[a.Focus]
	if a.Element != nil && a.Element.Safety != nil && a.Element.Safety.UseSafeAlternativesOnly {
		templates = safeAlternativeTemplates[a.Focus]
	}
	if len(templates) == 0 {
		templates = activityTemplates[types.FocusSensoryRegulation]
	}

	variant := (a.SpecificSkillSeed + a.HumanizeOffset) % len(templates)
	if variant < 0 {
		variant = 0
	}
	body := fmt.Sprintf(templates[variant], f.DisplayName(a.ObjectLabel))

	if audience == types.AudienceTherapist {
		return fmt.Sprintf("هدف علاجي (%s): %s", focusNamesAr[a.Focus], body)
	}
	return fmt.Sprintf("جرب مع طفلك: %s", body)
}

// FormatAll renders the whole refined list in order.
func (f *Formatter) FormatAll(acts []types.RefinedActivity, audience types.Audience) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = f.FormatActivity(a, audience)
	}
	return out
}
