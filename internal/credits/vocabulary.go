package credits

// roleVocabulary lists every role phrase the parser recognizes, lowercase.
// A longer phrase must appear before any shorter phrase that prefixes it
// ("location sound/sound mix" before "location sound"), otherwise the
// shorter phrase would always win and swallow the rest as a name.
// NewParser validates this ordering at construction.
var roleVocabulary = []string{
	"assistant camera",
	"camera intern",
	"color correction",
	"custom wardrobe",
	"d.p.",
	"director",
	"drone operator",
	"editor",
	"food stylist",
	"gaffer",
	"grip swing",
	"hair and makeup",
	"jib operator",
	"jingle composer",
	"jingle mixed by",
	"key grip",
	"location sound/sound mix",
	"location sound",
	"narrator",
	"original music by",
	"pedicab operator",
	"pedicab provided by",
	"photo assist",
	"producer/editor",
	"producer",
	"production assistants",
	"production assistant",
	"production designer",
	"production design",
	"production manager",
	"score mixed by",
	"second unit d.p.",
	"sound design/mix/original music",
	"sound design/mix",
	"still photographer",
	"studio teacher",
	"vfx/gfx",
	"vfx",
	"gfx",
	"vocalists",
	"voiceover",
	"copywriter/c.d.",
	"cast",
}

// displayExceptions maps vocabulary words whose display form is not a
// simple first-letter capitalization.
var displayExceptions = map[string]string{
	"d.p.":    "D.P.",
	"vfx":     "VFX",
	"gfx":     "GFX",
	"vfx/gfx": "VFX/GFX",
}
