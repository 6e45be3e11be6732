package render

import "github.com/ukaji3/intdash-go/pkg/intdash/models"

var t = models.T

// Section titles.
var (
	textOverview  = t("Overview", "نظرة عامة")
	textFinancial = t("Financial Analysis", "التحليل المالي")
	textProcess   = t("Process Flow", "تدفق العمليات")
	textDetailed  = t("Detailed Data", "البيانات التفصيلية")
)

// KPI cards.
var (
	textTotalValue    = t("Total Annual Integration Value", "إجمالي قيمة التكامل السنوية")
	textTotalSub      = t("Net value after all costs", "القيمة الصافية بعد جميع التكاليف")
	textPhase12       = t("Phase 1+2: Gas Recovery", "المرحلة 1+2: استرداد الغاز")
	textPhase12Sub    = t("LPG, H2, C2, C5+ Recovery", "استرداد الغاز المسال والهيدروجين")
	textPhase34       = t("Phase 3+4: Methanol & MTO", "المرحلة 3+4: الميثانول")
	textPhase34Sub    = t("Methanol Blending & Olefins", "مزج الميثانول والأوليفينات")
	textFinSummary    = t("Financial Summary", "الملخص المالي")
	textStreamDetails = t("Stream Details", "تفاصيل التيارات")
	textPriceTable    = t("Product Prices", "أسعار المنتجات")
)

// Table headers and rows.
var (
	textProduct    = t("Product", "المنتج")
	textQuantityTY = t("Quantity (t/y)", "الكمية (طن/سنة)")
	textValueUSDY  = t("Value ($/y)", "القيمة ($/سنة)")
	textPriceUSDT  = t("Price ($/ton)", "السعر ($/طن)")
	textNGMakeup   = t("NG Makeup Cost", "تكلفة الغاز الطبيعي")
	textTotalNet   = t("TOTAL NET VALUE", "إجمالي القيمة الصافية")
)

// Page chrome.
var (
	textDefaultTitle    = t("Integration Dashboard", "لوحة التكامل")
	textDefaultSubtitle = t("Petrochemical Integration Analysis", "تحليل التكامل البتروكيماوي")
	textGenerated       = t(" | Generated: ", " | تاريخ الإنشاء: ")
)
