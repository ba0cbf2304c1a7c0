package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические: разбор литерала
	LitInfo             Code = 1000
	LitMalformedDecimal Code = 1001
	LitMalformedHex     Code = 1002

	// Значение литерала
	ValInfo           Code = 2000
	ValNotPowerOfHalf Code = 2001

	// Манифест
	CfgInfo             Code = 3000
	CfgSyntax           Code = 3001
	CfgUnknownKey       Code = 3002
	CfgBadPrecision     Code = 3003
	CfgDuplicateConst   Code = 3004
	CfgInvalidIdent     Code = 3005
	CfgMissingField     Code = 3006
	CfgEmptyConstList   Code = 3007
	CfgInvalidOutputDir Code = 3008

	// Ввод-вывод
	IOInfo      Code = 4000
	IOLoadFile  Code = 4001
	IOWriteFile Code = 4002

	// Сканер Go-исходников
	ScnInfo       Code = 5000
	ScnParseError Code = 5001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:         "Unknown error",
		LitInfo:             "Literal information",
		LitMalformedDecimal: "Not a valid decimal floating point number literal",
		LitMalformedHex:     "Not a valid hex floating point number literal",
		ValInfo:             "Value information",
		ValNotPowerOfHalf:   "Floating point number isn't a positive power of 0.5",
		CfgInfo:             "Manifest information",
		CfgSyntax:           "Manifest syntax error",
		CfgUnknownKey:       "Unknown manifest key",
		CfgBadPrecision:     "Unknown precision",
		CfgDuplicateConst:   "Duplicate constant name",
		CfgInvalidIdent:     "Constant name is not a valid exported Go identifier",
		CfgMissingField:     "Missing required manifest field",
		CfgEmptyConstList:   "Manifest declares no constants",
		CfgInvalidOutputDir: "Output path must not escape the manifest directory",
		IOInfo:              "IO information",
		IOLoadFile:          "Failed to load file",
		IOWriteFile:         "Failed to write file",
		ScnInfo:             "Scanner information",
		ScnParseError:       "Go source does not parse",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LIT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("VAL%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("SCN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
