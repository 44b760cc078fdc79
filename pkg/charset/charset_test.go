package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestUTF8DetectorAlwaysAnswersUTF8(t *testing.T) {
	for _, sample := range [][]byte{nil, []byte("plain"), {0xff, 0xfe, 0x00}} {
		g := UTF8(sample)
		assert.Equal(t, UTF8Name, g.Charset)
		assert.Equal(t, 1.0, g.Confidence)
	}
}

func TestStatisticalEmptySample(t *testing.T) {
	g := Statistical()(nil)
	assert.Equal(t, UTF8Name, g.Charset)
}

func TestStatisticalConfidenceIsNormalized(t *testing.T) {
	g := Statistical()([]byte("The quick brown fox jumps over the lazy dog.\n"))
	assert.NotEmpty(t, g.Charset)
	assert.GreaterOrEqual(t, g.Confidence, 0.0)
	assert.LessOrEqual(t, g.Confidence, 1.0)
}

func TestLookup(t *testing.T) {
	tests := []string{"UTF-8", "utf8", "ISO-8859-1", "windows-1252", "Shift_JIS", "EUC-KR", "UTF-16LE", "KOI8-R"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			enc, err := Lookup(name)
			require.NoError(t, err)
			assert.NotNil(t, enc)
		})
	}
}

// Every label chardet's recognizers can report.
func TestLookupDetectorLabels(t *testing.T) {
	tests := []struct {
		label     string
		supported bool
	}{
		{"UTF-8", true},
		{"UTF-16BE", true},
		{"UTF-16LE", true},
		{"UTF-32BE", true},
		{"UTF-32LE", true},
		{"ISO-8859-1", true},
		{"ISO-8859-2", true},
		{"ISO-8859-5", true},
		{"ISO-8859-6", true},
		{"ISO-8859-7", true},
		{"ISO-8859-8", true},
		{"ISO-8859-8-I", true},
		{"ISO-8859-9", true},
		{"windows-1250", true},
		{"windows-1251", true},
		{"windows-1252", true},
		{"windows-1253", true},
		{"windows-1254", true},
		{"windows-1255", true},
		{"windows-1256", true},
		{"KOI8-R", true},
		{"Shift_JIS", true},
		{"GB-18030", true},
		{"EUC-JP", true},
		{"EUC-KR", true},
		{"Big5", true},
		{"ISO-2022-JP", true},
		{"ISO-2022-KR", false},
		{"ISO-2022-CN", false},
		{"IBM420_ltr", false},
		{"IBM420_rtl", false},
		{"IBM424_ltr", false},
		{"IBM424_rtl", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			enc, err := Lookup(tt.label)
			if tt.supported {
				require.NoError(t, err)
				assert.NotNil(t, enc)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLookupUTF32(t *testing.T) {
	enc, err := Lookup("UTF-32LE")
	require.NoError(t, err)
	out, err := enc.NewDecoder().Bytes([]byte{'h', 0, 0, 0, 0xe9, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "hé", string(out))

	enc, err = Lookup("utf-32be")
	require.NoError(t, err)
	out, err = enc.NewDecoder().Bytes([]byte{0, 0, 0x4e, 0x2d})
	require.NoError(t, err)
	assert.Equal(t, "中", string(out))
}

func TestStatisticalGB18030(t *testing.T) {
	raw, err := simplifiedchinese.GB18030.NewEncoder().String(chineseText)
	require.NoError(t, err)

	g := Statistical()([]byte(raw))
	assert.Equal(t, "GB-18030", g.Charset)
	assert.Greater(t, g.Confidence, 0.7)

	enc, err := Lookup(g.Charset)
	require.NoError(t, err)
	out, err := enc.NewDecoder().String(raw)
	require.NoError(t, err)
	assert.Equal(t, chineseText, out)
}

const chineseText = "中文测试，这是一个简单的例子。我们在这里写一些常用的汉字，" +
	"看看程序能不能正确地识别出文件的编码。如果识别成功，输出的内容应该和原文完全一样。\n"

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-charset")
	assert.Error(t, err)
}

func TestLatin1DecodesEveryByte(t *testing.T) {
	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(i)
	}
	out, err := Latin1.NewDecoder().Bytes(raw)
	require.NoError(t, err)

	runes := []rune(string(out))
	require.Len(t, runes, 256)
	for i, r := range runes {
		assert.Equal(t, rune(i), r)
	}
}
