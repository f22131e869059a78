// Package response holds the WhatsApp-formatted reply templates. All canned
// text lives here so the pipelines only produce raw content and the exact
// user-facing wording stays in one place.
package response

import (
	"fmt"
	"regexp"
	"strings"
)

// EmptyPrompt is returned when the inbound message is blank.
const EmptyPrompt = "Silakan ketik pesan Anda."

var cityPattern = regexp.MustCompile(`bengkel\s+(\w+)`)

// Greeting is the welcome message for short salutations.
func Greeting() string {
	return `🚗 *SELAMAT DATANG DI HONDA FREED SUPERCHATBOT!*

Saya asisten AI khusus untuk Honda Freed GB3/GB4 (2008-2016).

*Yang bisa saya bantu:*
🔧 *DIAGNOSA* - Ketik keluhan mobil Anda
   _Contoh: "AC tidak dingin" atau "CVT getar"_

🏎️ *MODIFIKASI* - Ketik permintaan mod
   _Contoh: "Stage 1" atau "modif mesin budget 10jt"_

📍 *BENGKEL* - Ketik "bengkel [kota]"
   _Contoh: "bengkel jakarta"_

---
Silakan ketik keluhan atau pertanyaan Anda!
`
}

// Help lists the available features with usage examples.
func Help() string {
	return `📋 *PANDUAN HONDA FREED SUPERCHATBOT*

*FITUR UTAMA:*

🔧 *DIAGNOSA MASALAH*
Ceritakan keluhan mobil Anda, saya akan analisa penyebab dan solusinya.
_Contoh:_
• "Mobil getar saat akselerasi"
• "AC tidak dingin"
• "Check engine light menyala"
• "Rem bunyi decit"

🏎️ *MODIFIKASI*
Tanyakan tentang upgrade dan modifikasi.
_Contoh:_
• "Stage 1" - paket modifikasi dasar
• "Stage 2" - paket menengah
• "Stage 3" - paket full racing
• "Modif mesin budget 15 juta"
• "Rekomendasi coilover"

📍 *CARI BENGKEL*
Ketik "bengkel [nama kota]" untuk rekomendasi bengkel.

---
💡 *Tips:* Semakin detail keluhan Anda, semakin akurat diagnosa saya!
`
}

// Workshop extracts a city name from the message and returns the workshop
// lookup placeholder. Falls back to "indonesia" when no city is mentioned.
func Workshop(message string) string {
	city := "indonesia"
	if m := cityPattern.FindStringSubmatch(strings.ToLower(message)); m != nil {
		city = m[1]
	}

	return fmt.Sprintf(`📍 *CARI BENGKEL DI %s*

Maaf, fitur pencarian bengkel masih dalam pengembangan.

*Sementara, berikut tips mencari bengkel:*

1. 🔍 Cari "bengkel Honda %s" di Google Maps
2. ⭐ Pilih yang rating di atas 4.0
3. 💬 Baca review dari customer lain
4. 📞 Hubungi dulu untuk konfirmasi

*Bengkel Resmi Honda:*
Kunjungi honda-indonesia.com/dealer-locator

---
Ketik keluhan mobil Anda untuk diagnosa!
`, strings.ToUpper(city), city)
}

// Diagnosis wraps the generated diagnosis text with the standard header and
// follow-up menu.
func Diagnosis(diagnosis string) string {
	return fmt.Sprintf(`🔧 *DIAGNOSA HONDA FREED*

%s

---
💡 _Diagnosa ini berdasarkan database 500+ kasus Honda Freed._
_Untuk kepastian, kunjungi bengkel resmi atau spesialis Honda._

Ketik:
• *BENGKEL [kota]* - cari bengkel terdekat
• *MODIF* - lihat katalog modifikasi
• *STAGE [1/2/3]* - paket modifikasi lengkap
`, diagnosis)
}

// ModificationCost renders the aggregated cost block appended to a
// modification plan. Empty when no parts were selected.
type ModificationCost struct {
	PartsMin   int64
	PartsMax   int64
	InstallMin int64
	InstallMax int64
	TotalMin   int64
	TotalMax   int64
}

// Modification wraps the generated plan with the stage header, cost summary
// and the standard warning footer. stage 0 means no stage was requested.
func Modification(plan string, stage int, stageName string, cost *ModificationCost) string {
	var stageHeader string
	if stage > 0 {
		stageHeader = fmt.Sprintf("*STAGE %d - %s*\n\n", stage, stageName)
	}

	var costSummary string
	if cost != nil {
		costSummary = fmt.Sprintf(`
---
💰 *ESTIMASI BIAYA*
Parts: Rp %s - Rp %s
Install: Rp %s - Rp %s
*TOTAL: Rp %s - Rp %s*
`,
			FormatRupiah(cost.PartsMin), FormatRupiah(cost.PartsMax),
			FormatRupiah(cost.InstallMin), FormatRupiah(cost.InstallMax),
			FormatRupiah(cost.TotalMin), FormatRupiah(cost.TotalMax))
	}

	return fmt.Sprintf(`🏎️ *MODIFICATION PLAN HONDA FREED*
%s
%s
%s
---
⚠️ _Modifikasi dapat membatalkan garansi pabrikan._
_Pastikan semua part legal untuk penggunaan jalan raya._

Ketik:
• *STAGE [1/2/3]* - lihat paket modifikasi lain
• *BENGKEL [kota]* - cari bengkel modifikasi
• *DIAGNOSA [keluhan]* - diagnosa masalah
`, stageHeader, plan, costSummary)
}

// VisionDiagnosis wraps the vision model output with the visual diagnosis
// header.
func VisionDiagnosis(diagnosis string) string {
	return fmt.Sprintf(`📷 *DIAGNOSA VISUAL HONDA FREED*

%s

---
💡 _Diagnosa ini berdasarkan analisa gambar dengan AI._
_Untuk kepastian, kunjungi bengkel untuk pemeriksaan langsung._

Ketik keluhan tambahan atau kirim foto lain untuk analisa lebih lanjut!
`, diagnosis)
}

// SystemBusy is returned when the upstream model rejects the request for
// rate limiting.
func SystemBusy() string {
	return `⚠️ *SISTEM SIBUK*

Maaf, terlalu banyak permintaan saat ini.
Silakan coba lagi dalam beberapa detik.

Atau ketik keluhan Anda secara teks untuk diagnosa alternatif.`
}

// InvalidImage is returned when the uploaded image cannot be processed.
func InvalidImage() string {
	return `⚠️ *GAMBAR TIDAK VALID*

Maaf, gambar tidak dapat diproses. Pastikan:
• Format: JPG, PNG, atau WEBP
• Ukuran: Maksimal 5MB
• Gambar jelas dan tidak blur

Silakan kirim ulang gambar yang lebih jelas.`
}

// ImageFailure is the generic fallback for image processing errors.
func ImageFailure() string {
	return `⚠️ *TERJADI KESALAHAN*

Maaf, gagal memproses gambar.
Silakan coba lagi atau ketik keluhan Anda secara teks.

Ketik *HELP* untuk panduan penggunaan.`
}

// SystemError is the generic pipeline failure response. The diagnostic
// detail is trimmed to keep internals out of the chat transcript.
func SystemError(err error) string {
	detail := ""
	if err != nil {
		detail = err.Error()
		// Rune-wise so a multibyte character is never split mid-sequence.
		if runes := []rune(detail); len(runes) > 100 {
			detail = string(runes[:100])
		}
	}
	return fmt.Sprintf(`⚠️ *TERJADI KESALAHAN*

Maaf, sistem sedang mengalami gangguan.
Error: %s

Silakan coba lagi dalam beberapa saat.

Atau ketik *HELP* untuk melihat panduan penggunaan.
`, detail)
}

// FormatRupiah renders an amount with Indonesian thousands separators.
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
