package statelaw

import "github.com/shopspring/decimal"

// mult parses a multiplier literal at init time. The table is static, so a
// malformed literal is a programming error and panics immediately.
func mult(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// table maps state code to its deposit return rule. Day counts and statute
// citations per state; Arizona is the only business-day state.
var table = map[string]StateRule{
	"AL": {Citation: "Ala. Code §35-9A-201", DeadlineDays: 60, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"AK": {Citation: "Alaska Stat. §34.03.070", DeadlineDays: 14, Unit: CalendarDays, PenaltyMultiplier: mult("1.5")},
	"AZ": {Citation: "A.R.S. §33-1321", DeadlineDays: 14, Unit: BusinessDays, PenaltyMultiplier: mult("2")},
	"AR": {Citation: "Ark. Code Ann. §18-16-305", DeadlineDays: 60, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"CA": {Citation: "Cal. Civ. Code §1950.5", DeadlineDays: 21, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"CO": {Citation: "C.R.S. §38-12-103", DeadlineDays: 60, Unit: CalendarDays, PenaltyMultiplier: mult("3")},
	"CT": {Citation: "Conn. Gen. Stat. §47a-21", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"DE": {Citation: "25 Del. Code §5514", DeadlineDays: 20, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"FL": {Citation: "Fla. Stat. §83.49", DeadlineDays: 15, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"GA": {Citation: "O.C.G.A. §44-7-55", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("3")},
	"HI": {Citation: "Haw. Rev. Stat. §521-44", DeadlineDays: 14, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"ID": {Citation: "Idaho Code §6-321", DeadlineDays: 21, Unit: CalendarDays, PenaltyMultiplier: mult("3")},
	"IL": {Citation: "765 ILCS 710/1", DeadlineDays: 45, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"IN": {Citation: "Ind. Code §32-31-3-12", DeadlineDays: 45, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"KS": {Citation: "K.S.A. §58-2550", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("1.5")},
	"KY": {Citation: "KRS §383.580", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"LA": {Citation: "La. Civ. Code art. 2707", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"ME": {Citation: "14 M.R.S. §6033", DeadlineDays: 21, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"MD": {Citation: "Md. Code Ann., Real Prop. §8-203", DeadlineDays: 45, Unit: CalendarDays, PenaltyMultiplier: mult("3")},
	"MA": {Citation: "Mass. Gen. Laws ch. 186, §15B", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("3")},
	"MI": {Citation: "Mich. Comp. Laws §554.613", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"MN": {Citation: "Minn. Stat. §504B.178", DeadlineDays: 21, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"MS": {Citation: "Miss. Code Ann. §89-8-21", DeadlineDays: 45, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"MO": {Citation: "Mo. Rev. Stat. §535.300", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"MT": {Citation: "Mont. Code Ann. §70-25-201", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"NE": {Citation: "Neb. Rev. Stat. §76-1416", DeadlineDays: 14, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"NV": {Citation: "Nev. Rev. Stat. §118A.242", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("3")},
	"NH": {Citation: "N.H. Rev. Stat. Ann. §540-A:7", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"NJ": {Citation: "N.J. Stat. Ann. §46:8-21.1", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"NM": {Citation: "N.M. Stat. Ann. §47-8-18", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"NY": {Citation: "N.Y. Gen. Oblig. §7-103", DeadlineDays: 14, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"NC": {Citation: "N.C. Gen. Stat. §42-52", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"ND": {Citation: "N.D. Cent. Code §47-16-07.1", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"OH": {Citation: "Ohio Rev. Code §5321.16", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"OK": {Citation: "41 Okla. Stat. §115", DeadlineDays: 45, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"OR": {Citation: "ORS 90.300", DeadlineDays: 31, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"PA": {Citation: "68 Pa. Cons. Stat. §250.512", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"RI": {Citation: "R.I. Gen. Laws §34-18-19", DeadlineDays: 20, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"SC": {Citation: "S.C. Code Ann. §27-40-410", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"SD": {Citation: "S.D. Codified Laws §43-32-24", DeadlineDays: 45, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"TN": {Citation: "Tenn. Code Ann. §66-28-301", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"TX": {Citation: "Tex. Prop. Code §92.109", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("3")},
	"UT": {Citation: "Utah Code §57-17-3", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("3")},
	"VT": {Citation: "9 V.S.A. §4461", DeadlineDays: 14, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"VA": {Citation: "Va. Code Ann. §55.1-1226", DeadlineDays: 45, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"WA": {Citation: "RCW 59.18.280", DeadlineDays: 21, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"WV": {Citation: "W. Va. Code §37-6A-1", DeadlineDays: 60, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"WI": {Citation: "Wis. Stat. §704.28", DeadlineDays: 21, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
	"WY": {Citation: "Wyo. Stat. Ann. §1-21-1208", DeadlineDays: 30, Unit: CalendarDays, PenaltyMultiplier: mult("2")},
}
