package jamo

// Block boundaries per the Unicode 7.0 charts for U+1100 (Hangul Jamo),
// U+3130 (Hangul Compatibility Jamo), U+A960 (Jamo Extended-A) and U+D7B0
// (Jamo Extended-B). Gaps inside the blocks are unassigned code points.
const (
	SyllableBase rune = 0xAC00
	SyllableEnd  rune = 0xD7A3

	leadBase       rune = 0x1100
	leadModernEnd  rune = 0x1112
	vowelBase      rune = 0x1161
	vowelModernEnd rune = 0x1175
	tailBase       rune = 0x11A8
	tailModernEnd  rune = 0x11C2
	jamoEnd        rune = 0x11FF

	// LeadFiller and VowelFiller mark an absent lead or vowel position.
	// They classify as lead and vowel but never compose.
	LeadFiller  rune = 0x115F
	VowelFiller rune = 0x1160

	hcjBase        rune = 0x3131
	hcjModernEnd   rune = 0x3163
	hcjArchaicBase rune = 0x3165
	hcjEnd         rune = 0x318E

	extLeadBase  rune = 0xA960
	extLeadEnd   rune = 0xA97C
	extVowelBase rune = 0xD7B0
	extVowelEnd  rune = 0xD7C6
	extTailBase  rune = 0xD7CB
	extTailEnd   rune = 0xD7FB
)

const (
	leadCount  = 19
	vowelCount = 21
	tailCount  = 28 // includes index 0, "no tail"
)

// Modern jamo map onto HCJ by fixed offset within each class.
var (
	hcjLeadsModern = []rune("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")
	hcjTailsModern = []rune("ㄱㄲㄳㄴㄵㄶㄷㄹㄺㄻㄼㄽㄾㄿㅀㅁㅂㅄㅅㅆㅇㅈㅊㅋㅌㅍㅎ")
	// Modern HCJ vowels run contiguously from U+314F in lockstep with
	// U+1161..U+1175, so no table is needed for them.
)

// Archaic conjoining jamo that share a letter name with an HCJ code point.
// The relation is name-based per the Unicode charts; archaic jamo without a
// same-named HCJ letter have no entry and pass through unconverted.
var archaicLeadToHCJ = map[rune]rune{
	0x1114: 'ㅥ', // SSANGNIEUN
	0x1115: 'ㅦ', // NIEUN-TIKEUT
	0x111A: 'ㅀ', // RIEUL-HIEUH
	0x111C: 'ㅮ', // MIEUM-PIEUP
	0x111D: 'ㅱ', // KAPYEOUNMIEUM
	0x111E: 'ㅲ', // PIEUP-KIYEOK
	0x1120: 'ㅳ', // PIEUP-TIKEUT
	0x1121: 'ㅄ', // PIEUP-SIOS
	0x1122: 'ㅴ', // PIEUP-SIOS-KIYEOK
	0x1123: 'ㅵ', // PIEUP-SIOS-TIKEUT
	0x1127: 'ㅶ', // PIEUP-CIEUC
	0x1129: 'ㅷ', // PIEUP-THIEUTH
	0x112B: 'ㅸ', // KAPYEOUNPIEUP
	0x112C: 'ㅹ', // KAPYEOUNSSANGPIEUP
	0x112D: 'ㅺ', // SIOS-KIYEOK
	0x112E: 'ㅻ', // SIOS-NIEUN
	0x112F: 'ㅼ', // SIOS-TIKEUT
	0x1132: 'ㅽ', // SIOS-PIEUP
	0x1136: 'ㅾ', // SIOS-CIEUC
	0x1140: 'ㅿ', // PANSIOS
	0x1147: 'ㆀ', // SSANGIEUNG
	0x114C: 'ㆁ', // YESIEUNG
	0x1157: 'ㆄ', // KAPYEOUNPHIEUPH
	0x1158: 'ㆅ', // SSANGHIEUH
	0x1159: 'ㆆ', // YEORINHIEUH
	0x115B: 'ㅧ', // NIEUN-SIOS
	0x115C: 'ㄵ', // NIEUN-CIEUC
	0x115D: 'ㄶ', // NIEUN-HIEUH
}

var archaicVowelToHCJ = map[rune]rune{
	0x1184: 'ㆇ', // YO-YA
	0x1185: 'ㆈ', // YO-YAE
	0x1188: 'ㆉ', // YO-I
	0x1191: 'ㆊ', // YU-YEO
	0x1192: 'ㆋ', // YU-YE
	0x1194: 'ㆌ', // YU-I
	0x119E: 'ㆍ', // ARAEA
	0x11A1: 'ㆎ', // ARAEA-I (HCJ name ARAEAE)
}

var archaicTailToHCJ = map[rune]rune{
	0x11C6: 'ㅦ', // NIEUN-TIKEUT
	0x11C7: 'ㅧ', // NIEUN-SIOS
	0x11C8: 'ㅨ', // NIEUN-PANSIOS
	0x11CC: 'ㅩ', // RIEUL-KIYEOK-SIOS
	0x11CE: 'ㅪ', // RIEUL-TIKEUT
	0x11D3: 'ㅫ', // RIEUL-PIEUP-SIOS
	0x11D7: 'ㅬ', // RIEUL-PANSIOS
	0x11D9: 'ㅭ', // RIEUL-YEORINHIEUH
	0x11DC: 'ㅮ', // MIEUM-PIEUP
	0x11DD: 'ㅯ', // MIEUM-SIOS
	0x11DF: 'ㅰ', // MIEUM-PANSIOS
	0x11E2: 'ㅱ', // KAPYEOUNMIEUM
	0x11E6: 'ㅸ', // KAPYEOUNPIEUP
	0x11E7: 'ㅺ', // SIOS-KIYEOK
	0x11E8: 'ㅼ', // SIOS-TIKEUT
	0x11EA: 'ㅽ', // SIOS-PIEUP
	0x11EB: 'ㅿ', // PANSIOS
	0x11EE: 'ㆀ', // SSANGIEUNG
	0x11F0: 'ㆁ', // YESIEUNG
	0x11F1: 'ㆂ', // YESIEUNG-SIOS
	0x11F2: 'ㆃ', // YESIEUNG-PANSIOS
	0x11F4: 'ㆄ', // KAPYEOUNPHIEUPH
	0x11F9: 'ㆆ', // YEORINHIEUH
	0x11FF: 'ㅥ', // SSANGNIEUN
}

// Derived lookup tables. jamoToHCJ collapses all classes (many-to-one); the
// inverse direction stays class-scoped because a single HCJ letter can name
// both a lead and a tail.
var (
	jamoToHCJ  map[rune]rune
	hcjToLead  map[rune]rune
	hcjToVowel map[rune]rune
	hcjToTail  map[rune]rune
)

func init() {
	jamoToHCJ = make(map[rune]rune, 160)
	hcjToLead = make(map[rune]rune, leadCount+len(archaicLeadToHCJ))
	hcjToVowel = make(map[rune]rune, vowelCount+len(archaicVowelToHCJ))
	hcjToTail = make(map[rune]rune, tailCount+len(archaicTailToHCJ))

	for i, hcj := range hcjLeadsModern {
		j := leadBase + rune(i)
		jamoToHCJ[j] = hcj
		hcjToLead[hcj] = j
	}
	for i := 0; i < vowelCount; i++ {
		j := vowelBase + rune(i)
		hcj := rune(0x314F + i)
		jamoToHCJ[j] = hcj
		hcjToVowel[hcj] = j
	}
	for i, hcj := range hcjTailsModern {
		j := tailBase + rune(i)
		jamoToHCJ[j] = hcj
		hcjToTail[hcj] = j
	}

	for j, hcj := range archaicLeadToHCJ {
		jamoToHCJ[j] = hcj
		hcjToLead[hcj] = j
	}
	for j, hcj := range archaicVowelToHCJ {
		jamoToHCJ[j] = hcj
		hcjToVowel[hcj] = j
	}
	for j, hcj := range archaicTailToHCJ {
		jamoToHCJ[j] = hcj
		hcjToTail[hcj] = j
	}
}
