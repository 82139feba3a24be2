package semantics

// Interpretation is the curated real-world reading of a detector label.
type Interpretation struct {
	NameAr    string
	Category  string
	Context   string
	Relevance float64
}

// interpretationEntry binds a label keyword to its interpretation. Entries
// are matched by substring in order, so more specific keywords ("coffee
// table") must precede the general ones ("table").
type interpretationEntry struct {
	Keyword string
	Interp  Interpretation
}

// Functional categories. Priority for ordering is derived from these, not
// from individual labels.
const (
	CategorySeating       = "seating"
	CategorySurface       = "surface"
	CategoryStorage       = "storage"
	CategorySleep         = "sleep"
	CategorySoft          = "soft"
	CategoryFloorCovering = "floor_covering"
	CategoryStructure     = "structure"
	CategoryClimbing      = "climbing"
	CategoryPlay          = "play"
	CategorySchool        = "school"
	CategoryHousehold     = "household"
	CategoryElectronics   = "electronics"
	CategoryDecor         = "decor"
	CategoryAppliance     = "appliance"
)

// interpretationTable covers the household-object vocabulary the detector
// realistically emits for indoor child environments.
var interpretationTable = []interpretationEntry{
	// Play objects first: they carry the highest therapeutic relevance
	{"ball", Interpretation{"كرة", CategoryPlay, "كرة مناسبة لأنشطة الرمي والالتقاط والركل", 0.95}},
	{"balloon", Interpretation{"بالون", CategoryPlay, "بالون خفيف لأنشطة الضرب والمتابعة البصرية", 0.9}},
	{"lego", Interpretation{"مكعبات تركيب", CategoryPlay, "مكعبات تركيب صغيرة تنمي المهارات الدقيقة", 0.95}},
	{"block", Interpretation{"مكعبات", CategoryPlay, "مكعبات بناء للتركيب والموازنة", 0.95}},
	{"puzzle", Interpretation{"أحجية", CategoryPlay, "أحجية تركيب تنمي حل المشكلات", 0.9}},
	{"doll", Interpretation{"دمية", CategoryPlay, "دمية للعب التخيلي والرعاية", 0.85}},
	{"teddy", Interpretation{"دب قطني", CategoryPlay, "لعبة قطنية ناعمة للعب الحسي", 0.85}},
	{"stuffed", Interpretation{"لعبة قطنية", CategoryPlay, "لعبة محشوة ناعمة الملمس", 0.85}},
	{"toy car", Interpretation{"سيارة لعبة", CategoryPlay, "سيارة صغيرة للدفع والتتبع", 0.9}},
	{"toy", Interpretation{"لعبة", CategoryPlay, "لعبة أطفال عامة", 0.85}},
	{"swing", Interpretation{"أرجوحة", CategoryPlay, "أرجوحة للتنظيم الحسي الدهليزي", 0.9}},
	{"slide", Interpretation{"زحليقة", CategoryPlay, "زحليقة للحركة الكبيرة والتسلق الآمن", 0.9}},
	{"trampoline", Interpretation{"نطاطة", CategoryPlay, "نطاطة للقفز وتنظيم الطاقة", 0.9}},
	{"tricycle", Interpretation{"دراجة ثلاثية", CategoryPlay, "دراجة ثلاثية العجلات للتوازن والدفع", 0.85}},
	{"bicycle", Interpretation{"دراجة", CategoryPlay, "دراجة للتوازن والتناسق الحركي", 0.8}},
	{"scooter", Interpretation{"سكوتر", CategoryPlay, "سكوتر للتوازن الديناميكي", 0.8}},
	{"hula hoop", Interpretation{"طوق", CategoryPlay, "طوق للقفز داخله والدوران", 0.85}},
	{"hoop", Interpretation{"طوق", CategoryPlay, "طوق للأنشطة الحركية", 0.8}},
	{"rope", Interpretation{"حبل", CategoryPlay, "حبل للقفز والشد الآمن", 0.8}},
	{"bead", Interpretation{"خرز", CategoryPlay, "خرز للتسلسل وتنمية قبضة الأصابع", 0.85}},

	// School and art supplies
	{"notebook", Interpretation{"دفتر", CategorySchool, "دفتر للرسم والكتابة", 0.8}},
	{"book", Interpretation{"كتاب", CategorySchool, "كتاب لتقليب الصفحات والقراءة المشتركة", 0.85}},
	{"crayon", Interpretation{"ألوان شمعية", CategorySchool, "ألوان شمعية للتلوين وقبضة الكتابة", 0.9}},
	{"pencil", Interpretation{"قلم رصاص", CategorySchool, "قلم رصاص لأنشطة ما قبل الكتابة", 0.85}},
	{"marker", Interpretation{"قلم تلوين", CategorySchool, "قلم تلوين عريض للرسم", 0.85}},
	{"pen", Interpretation{"قلم", CategorySchool, "قلم للرسم والتخطيط", 0.8}},
	{"paper", Interpretation{"ورقة", CategorySchool, "ورق للقص والطي والرسم", 0.8}},
	{"scissors", Interpretation{"مقص", CategorySchool, "مقص أطفال لأنشطة القص بإشراف", 0.8}},
	{"paint", Interpretation{"ألوان", CategorySchool, "ألوان للرسم الحسي", 0.85}},
	{"brush", Interpretation{"فرشاة", CategorySchool, "فرشاة رسم للتحكم الدقيق", 0.8}},

	// Household manipulables
	{"laundry basket", Interpretation{"سلة غسيل", CategoryHousehold, "سلة غسيل للفرز والحمل الآمن", 0.8}},
	{"basket", Interpretation{"سلة", CategoryHousehold, "سلة للجمع والتصنيف", 0.8}},
	{"box", Interpretation{"صندوق", CategoryHousehold, "صندوق للتعبئة والإفراغ", 0.8}},
	{"container", Interpretation{"علبة", CategoryHousehold, "علبة بغطاء للفتح والإغلاق", 0.75}},
	{"bucket", Interpretation{"دلو", CategoryHousehold, "دلو للنقل والتعبئة", 0.75}},
	{"bag", Interpretation{"حقيبة", CategoryHousehold, "حقيبة للفتح والتعبئة", 0.7}},
	{"bottle", Interpretation{"زجاجة", CategoryHousehold, "زجاجة لفك الغطاء وإحكامه", 0.75}},
	{"cup", Interpretation{"كوب", CategoryHousehold, "كوب للسكب والإمساك", 0.75}},
	{"mug", Interpretation{"كوب", CategoryHousehold, "كوب بمقبض للإمساك الوظيفي", 0.7}},
	{"plate", Interpretation{"طبق", CategoryHousehold, "طبق للتقديم وتنسيق المائدة", 0.7}},
	{"bowl", Interpretation{"وعاء", CategoryHousehold, "وعاء للخلط والتعبئة", 0.7}},
	{"spoon", Interpretation{"ملعقة", CategoryHousehold, "ملعقة للغرف والنقل", 0.75}},
	{"tray", Interpretation{"صينية", CategoryHousehold, "صينية للحمل المتوازن", 0.7}},
	{"towel", Interpretation{"منشفة", CategoryHousehold, "منشفة للف والعصر والطي", 0.7}},
	{"button", Interpretation{"زر", CategoryHousehold, "أزرار للتدريب على الإغلاق", 0.7}},
	{"string", Interpretation{"خيط", CategoryHousehold, "خيط للتسلسل والربط", 0.7}},

	// Soft furnishings
	{"pillow", Interpretation{"وسادة", CategorySoft, "وسادة ناعمة للرمي الآمن وبناء المسارات", 0.8}},
	{"cushion", Interpretation{"وسادة أرضية", CategorySoft, "وسادة أرضية للجلوس والتوازن", 0.8}},
	{"blanket", Interpretation{"بطانية", CategorySoft, "بطانية للف والشد والاختباء", 0.75}},
	{"beanbag", Interpretation{"كيس جلوس", CategorySoft, "كيس جلوس للضغط العميق", 0.75}},

	// Seating
	{"armchair", Interpretation{"كرسي بذراعين", CategorySeating, "كرسي وثير ثابت يصلح كنقطة استناد", 0.7}},
	{"sofa", Interpretation{"أريكة", CategorySeating, "أريكة ثابتة تصلح للالتفاف حولها والاستناد إليها", 0.75}},
	{"couch", Interpretation{"أريكة", CategorySeating, "أريكة ثابتة تصلح للالتفاف حولها والاستناد إليها", 0.75}},
	{"ottoman", Interpretation{"مسند قدمين", CategorySeating, "مسند منخفض يصلح للخطو فوقه بإشراف", 0.7}},
	{"stool", Interpretation{"مقعد صغير", CategorySeating, "مقعد صغير خفيف للجلوس والتحريك", 0.7}},
	{"bench", Interpretation{"مقعد طويل", CategorySeating, "مقعد طويل للجلوس الجانبي والتنقل", 0.7}},
	{"chair", Interpretation{"كرسي", CategorySeating, "كرسي للجلوس والمناورة حوله", 0.7}},

	// Surfaces and storage
	{"coffee table", Interpretation{"طاولة قهوة", CategorySurface, "طاولة منخفضة للعمل واقفا أو جالسا", 0.75}},
	{"dining table", Interpretation{"طاولة طعام", CategorySurface, "طاولة طعام للأنشطة المكتبية", 0.7}},
	{"desk", Interpretation{"مكتب", CategorySurface, "مكتب لأنشطة الجلوس الدقيقة", 0.7}},
	{"table", Interpretation{"طاولة", CategorySurface, "طاولة كسطح عمل للأنشطة", 0.7}},
	{"counter", Interpretation{"منضدة", CategorySurface, "منضدة عالية للوقوف والعمل", 0.6}},
	{"nightstand", Interpretation{"منضدة سرير", CategorySurface, "منضدة جانبية صغيرة", 0.6}},
	{"bookshelf", Interpretation{"رف كتب", CategoryStorage, "رف كتب للترتيب والوصول الموجه", 0.65}},
	{"shelf", Interpretation{"رف", CategoryStorage, "رف للترتيب ومد الذراع", 0.65}},
	{"cabinet", Interpretation{"خزانة", CategoryStorage, "خزانة ثابتة بأبواب للفتح والإغلاق", 0.6}},
	{"dresser", Interpretation{"خزانة أدراج", CategoryStorage, "خزانة أدراج للسحب والدفع الخفيف", 0.6}},
	{"wardrobe", Interpretation{"دولاب ملابس", CategoryStorage, "دولاب ثابت كبير", 0.55}},
	{"drawer", Interpretation{"دُرج", CategoryStorage, "دُرج للفتح والترتيب", 0.6}},

	// Sleep
	{"crib", Interpretation{"سرير أطفال", CategorySleep, "سرير أطفال بحواجز", 0.6}},
	{"mattress", Interpretation{"مرتبة", CategorySleep, "مرتبة أرضية للتدحرج والقفز الآمن", 0.75}},
	{"bed", Interpretation{"سرير", CategorySleep, "سرير ثابت منخفض الحواف", 0.6}},

	// Floor coverings
	{"carpet", Interpretation{"سجادة", CategoryFloorCovering, "سجادة كمساحة لعب أرضية آمنة", 0.8}},
	{"rug", Interpretation{"سجادة صغيرة", CategoryFloorCovering, "سجادة صغيرة تحدد مساحة النشاط", 0.8}},
	{"mat", Interpretation{"حصيرة", CategoryFloorCovering, "حصيرة لينة للأنشطة الأرضية", 0.8}},
	{"floor", Interpretation{"أرضية", CategoryFloorCovering, "أرضية مفتوحة للحركة", 0.6}},

	// Structure and climbing
	{"staircase", Interpretation{"درج", CategoryClimbing, "درج للصعود والنزول بإشراف", 0.7}},
	{"stairs", Interpretation{"درج", CategoryClimbing, "درج للصعود والنزول بإشراف", 0.7}},
	{"step", Interpretation{"درجة", CategoryClimbing, "درجة منخفضة للخطو", 0.7}},
	{"ladder", Interpretation{"سلم", CategoryClimbing, "سلم يتطلب إشرافا مباشرا", 0.55}},
	{"railing", Interpretation{"درابزين", CategoryStructure, "درابزين للإمساك أثناء الصعود", 0.5}},
	{"window", Interpretation{"نافذة", CategoryStructure, "نافذة كمعلم بصري في الغرفة", 0.4}},
	{"curtain", Interpretation{"ستارة", CategoryStructure, "ستارة للاختباء والكشف", 0.5}},
	{"door", Interpretation{"باب", CategoryStructure, "باب كنقطة انطلاق ووصول", 0.45}},
	{"wall", Interpretation{"جدار", CategoryStructure, "جدار للاستناد وأنشطة الدفع الثابت", 0.4}},

	// Electronics, decor, appliances (low interaction value)
	{"television", Interpretation{"تلفاز", CategoryElectronics, "تلفاز مثبت يبقى خارج متناول اللعب", 0.4}},
	{"tv", Interpretation{"تلفاز", CategoryElectronics, "تلفاز مثبت يبقى خارج متناول اللعب", 0.4}},
	{"lamp", Interpretation{"مصباح", CategoryElectronics, "مصباح كمرجع بصري للإضاءة", 0.4}},
	{"computer", Interpretation{"حاسوب", CategoryElectronics, "جهاز يبقى خارج نشاط الطفل", 0.35}},
	{"laptop", Interpretation{"حاسوب محمول", CategoryElectronics, "جهاز يبقى خارج نشاط الطفل", 0.35}},
	{"clock", Interpretation{"ساعة", CategoryDecor, "ساعة كمرجع بصري للوقت", 0.4}},
	{"mirror", Interpretation{"مرآة", CategoryDecor, "مرآة للوعي بالجسم والتقليد", 0.6}},
	{"vase", Interpretation{"مزهرية", CategoryDecor, "مزهرية قابلة للكسر تبقى بعيدا", 0.35}},
	{"plant", Interpretation{"نبتة", CategoryDecor, "نبتة منزلية للملاحظة والرعاية", 0.5}},
	{"picture", Interpretation{"لوحة", CategoryDecor, "لوحة للوصف والمطابقة البصرية", 0.45}},
	{"frame", Interpretation{"إطار صورة", CategoryDecor, "إطار صورة للملاحظة", 0.4}},
	{"refrigerator", Interpretation{"ثلاجة", CategoryAppliance, "ثلاجة ثابتة كبيرة", 0.35}},
	{"fridge", Interpretation{"ثلاجة", CategoryAppliance, "ثلاجة ثابتة كبيرة", 0.35}},
	{"oven", Interpretation{"فرن", CategoryAppliance, "فرن يبقى خارج أنشطة الطفل", 0.3}},
	{"stove", Interpretation{"موقد", CategoryAppliance, "موقد يبقى خارج أنشطة الطفل", 0.3}},
	{"washing machine", Interpretation{"غسالة", CategoryAppliance, "غسالة ثابتة كبيرة", 0.35}},
	{"sink", Interpretation{"مغسلة", CategoryAppliance, "مغسلة لأنشطة الغسل بإشراف", 0.4}},
}

// envSynthesis produces a specific Arabic element name when a label names a
// whole scene or environment rather than one object.
var envSynthesis = []interpretationEntry{
	{"living room", Interpretation{"سجادة غرفة المعيشة", CategoryFloorCovering, "مساحة غرفة المعيشة كأرضية نشاط", 0.6}},
	{"bedroom", Interpretation{"سرير غرفة النوم", CategorySleep, "غرفة النوم كبيئة نشاط هادئة", 0.55}},
	{"kitchen", Interpretation{"طاولة المطبخ", CategorySurface, "المطبخ كسطح عمل بإشراف", 0.5}},
	{"playroom", Interpretation{"مساحة اللعب", CategoryFloorCovering, "غرفة لعب مفتوحة", 0.7}},
	{"nursery", Interpretation{"غرفة الطفل", CategoryFloorCovering, "غرفة الطفل كمساحة نشاط", 0.6}},
	{"hallway", Interpretation{"ممر المنزل", CategoryFloorCovering, "ممر مستقيم للمشي الموجه", 0.55}},
	{"hall", Interpretation{"ممر المنزل", CategoryFloorCovering, "ممر مستقيم للمشي الموجه", 0.55}},
	{"furniture", Interpretation{"قطعة أثاث منزلية", CategorySurface, "قطعة أثاث تصلح كنقطة استناد", 0.5}},
	{"interior", Interpretation{"مساحة داخلية للعب", CategoryFloorCovering, "مساحة داخلية مفتوحة", 0.5}},
	{"room", Interpretation{"مساحة الغرفة المفتوحة", CategoryFloorCovering, "مساحة غرفة مفتوحة للحركة", 0.5}},
	{"house", Interpretation{"مساحة منزلية للعب", CategoryFloorCovering, "بيئة منزلية عامة", 0.45}},
	{"home", Interpretation{"مساحة منزلية للعب", CategoryFloorCovering, "بيئة منزلية عامة", 0.45}},
}

// exclusionKeywords drop a label outright: weapons, hate symbols, adult
// venues, and anything clearly unrelated to a child's home environment.
var exclusionKeywords = []string{
	"weapon", "gun", "pistol", "rifle", "knife", "sword", "blade", "ammunition",
	"swastika", "hate",
	"alcohol", "beer", "wine", "liquor", "vodka", "whiskey", "cigarette", "cigar", "ashtray", "hookah",
	"casino", "nightclub", "bar counter", "slot machine",
	"syringe", "pill", "medication",
	"car engine", "motorcycle", "traffic", "street sign",
	"lingerie",
}

// manipulableCategories surface first in the output ordering; these are the
// object types a therapy activity can be built directly around.
var manipulableCategories = map[string]bool{
	CategoryPlay:      true,
	CategorySchool:    true,
	CategoryHousehold: true,
	CategorySoft:      true,
}

// structuralCategories are passive background and sort last.
var structuralCategories = map[string]bool{
	CategoryStructure: true,
	CategoryAppliance: true,
}
