package models

// Depository business constants. Beneficiary and header prefix are the
// installation defaults; both can be overridden through configuration.
const (
	DefaultBeneficiary  = "1207650000865934"
	DefaultHeaderPrefix = "076500DPADM"

	// FilenamePrefix is the fixed numeric prefix of every RAW filename.
	FilenamePrefix = "18"

	// Instruction type codes written to the Tp tag.
	TypeCodeNSDL = "4"
	TypeCodeCDSL = "5"

	// NSDLPrefix marks a counter-party identifier as an NSDL account.
	NSDLPrefix = "IN"

	// CounterpartyLength is the mandatory length of the CtrPty
	// identifier. This is a structural contract of the identifier
	// format, not a convention.
	CounterpartyLength = 16

	// ReferenceLength is the fixed width of the Chqrefno tag.
	ReferenceLength = 8
)

// Field names shared between input columns and output tags.
const (
	FieldTp        = "Tp"
	FieldDt        = "Dt"
	FieldBnfcry    = "Bnfcry"
	FieldCtrPty    = "CtrPty"
	FieldISIN      = "ISIN"
	FieldQty       = "Qty"
	FieldFlg       = "Flg"
	FieldTrf       = "Trf"
	FieldClnt      = "Clnt"
	FieldBrkr      = "Brkr"
	FieldRsn       = "Rsn"
	FieldConamt    = "Conamt"
	FieldPaymod    = "Paymod"
	FieldBnkno     = "Bnkno"
	FieldBnkname   = "Bnkname"
	FieldBrnchname = "Brnchname"
	FieldXferdt    = "Xferdt"
	FieldChqrefno  = "Chqrefno"
)

// tagOrderNSDL is the RAW tag sequence for NSDL instructions. The
// counter-party identifier is split into Clnt/Brkr and never rendered
// whole.
var tagOrderNSDL = []string{
	FieldTp, FieldDt, FieldBnfcry, FieldISIN, FieldQty, FieldFlg,
	FieldTrf, FieldClnt, FieldBrkr, FieldRsn, FieldConamt, FieldPaymod,
	FieldBnkno, FieldBnkname, FieldBrnchname, FieldXferdt, FieldChqrefno,
}

// tagOrderCDSL is the RAW tag sequence for CDSL instructions. The
// counter-party identifier is rendered whole; Clnt/Brkr do not exist
// in this schema.
var tagOrderCDSL = []string{
	FieldTp, FieldDt, FieldBnfcry, FieldCtrPty, FieldISIN, FieldQty,
	FieldFlg, FieldTrf, FieldRsn, FieldConamt, FieldPaymod,
	FieldBnkno, FieldBnkname, FieldBrnchname, FieldXferdt, FieldChqrefno,
}

// TagOrder returns the ordered tag template for a depository variant.
// Callers must not mutate the returned slice.
func TagOrder(v DepositoryVariant) []string {
	if v == VariantNSDL {
		return tagOrderNSDL
	}
	return tagOrderCDSL
}

// ConstantFields returns the fixed field set applied to every record
// before any per-row values. Tp carries a baseline that classification
// always overrides.
func ConstantFields(beneficiary string) map[string]string {
	return map[string]string{
		FieldBnfcry: beneficiary,
		FieldFlg:    "S",
		FieldTrf:    "X",
		FieldRsn:    "2",
		FieldPaymod: "2",
	}
}

// baseInputColumns is the set of column headers an upstream export may
// carry. Dt and CtrPty are mandatory; the rest are optional per the
// variant's needs.
var baseInputColumns = []string{
	FieldDt, FieldCtrPty, FieldQty, FieldConamt, FieldChqrefno,
	FieldISIN, FieldBnkno, FieldBnkname, FieldBrnchname,
}

// RequiredInputColumns lists the headers every input file must declare.
var RequiredInputColumns = []string{FieldDt, FieldCtrPty}

// InputColumns returns the permitted input header set: the base schema
// plus any extra columns declared in configuration.
func InputColumns(extra []string) map[string]bool {
	allowed := make(map[string]bool, len(baseInputColumns)+len(extra))
	for _, c := range baseInputColumns {
		allowed[c] = true
	}
	for _, c := range extra {
		allowed[c] = true
	}
	return allowed
}

// File permissions
const (
	PermissionDataFile  = 0644
	PermissionDirectory = 0750
)
