package command

// Code page and international character set selection.

// CodePage is a character code page selectable with ESC t.
// The printer ships 40+ pages for international character support.
type CodePage byte

const (
	// CP437USAStandardEurope is the power-on default.
	CP437USAStandardEurope CodePage = 0
	// Katakana is the Japanese syllabary page.
	Katakana CodePage = 1
	// CP850Multilingual is multilingual Latin.
	CP850Multilingual CodePage = 2
	// CP860Portuguese is Portuguese.
	CP860Portuguese CodePage = 3
	// CP863CanadianFrench is Canadian French.
	CP863CanadianFrench CodePage = 4
	// CP865Nordic covers Danish, Norwegian, Swedish and Finnish.
	CP865Nordic CodePage = 5
	// Windows1252LatinI is Western European Latin I.
	Windows1252LatinI CodePage = 16
	// CP866Cyrillic2 is Russian Cyrillic #2.
	CP866Cyrillic2 CodePage = 17
	// CP852Latin2 is Central/Eastern European Latin 2.
	CP852Latin2 CodePage = 18
	// CP858Euro is multilingual Latin with the Euro symbol.
	CP858Euro CodePage = 19
	// CP862HebrewDOS is Hebrew (DOS).
	CP862HebrewDOS CodePage = 21
	// CP864Arabic is Arabic.
	CP864Arabic CodePage = 22
	// Thai42 is Thai character code 42.
	Thai42 CodePage = 23
	// Windows1253Greek is Greek (Windows).
	Windows1253Greek CodePage = 24
	// Windows1254Turkish is Turkish (Windows).
	Windows1254Turkish CodePage = 25
	// Windows1257Baltic covers Lithuanian, Latvian and Estonian.
	Windows1257Baltic CodePage = 26
	// Farsi is Persian.
	Farsi CodePage = 27
	// Windows1251Cyrillic covers Russian, Bulgarian and Serbian.
	Windows1251Cyrillic CodePage = 28
	// CP737Greek is Greek (DOS).
	CP737Greek CodePage = 29
	// CP775Baltic is Baltic (DOS).
	CP775Baltic CodePage = 30
	// Thai14 is Thai character code 14.
	Thai14 CodePage = 31
	// HebrewOld is the old Hebrew code.
	HebrewOld CodePage = 32
	// Windows1255HebrewNew is Hebrew (Windows).
	Windows1255HebrewNew CodePage = 33
	// Thai11 is Thai character code 11.
	Thai11 CodePage = 34
	// Thai18 is Thai character code 18.
	Thai18 CodePage = 35
	// CP855Cyrillic is the alternative Cyrillic page.
	CP855Cyrillic CodePage = 36
	// CP857Turkish is Turkish (DOS).
	CP857Turkish CodePage = 37
	// CP928Greek is the alternative Greek page.
	CP928Greek CodePage = 38
	// Thai16 is Thai character code 16.
	Thai16 CodePage = 39
	// Windows1256Arabic is Arabic (Windows).
	Windows1256Arabic CodePage = 40
)

// SelectCodePage changes the character encoding for subsequent text.
//
// ESC/POS: `ESC t n` (0x1B 0x74 n)
type SelectCodePage CodePage

// Encode implements Command.
func (s SelectCodePage) Encode() []byte { return []byte{ESC, 't', byte(s)} }

// InternationalCharacterSet swaps country-specific characters such as
// currency symbols and punctuation.
type InternationalCharacterSet byte

const (
	CharsetUSA          InternationalCharacterSet = 0
	CharsetFrance       InternationalCharacterSet = 1
	CharsetGermany      InternationalCharacterSet = 2
	CharsetUK           InternationalCharacterSet = 3
	CharsetDenmarkI     InternationalCharacterSet = 4
	CharsetSweden       InternationalCharacterSet = 5
	CharsetItaly        InternationalCharacterSet = 6
	CharsetSpainI       InternationalCharacterSet = 7
	CharsetJapan        InternationalCharacterSet = 8
	CharsetNorway       InternationalCharacterSet = 9
	CharsetDenmarkII    InternationalCharacterSet = 10
	CharsetSpainII      InternationalCharacterSet = 11
	CharsetLatinAmerica InternationalCharacterSet = 12
	CharsetKorea        InternationalCharacterSet = 13
)

// SelectCharacterSet changes country-specific characters for
// subsequent text.
//
// ESC/POS: `ESC R n` (0x1B 0x52 n)
type SelectCharacterSet InternationalCharacterSet

// Encode implements Command.
func (s SelectCharacterSet) Encode() []byte { return []byte{ESC, 'R', byte(s)} }
