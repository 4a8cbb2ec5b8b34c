// Package rule holds the closed vocabulary of scoring rule keys and the typed
// value table every scoring template resolves to.
package rule

import (
	"github.com/lonng/twmj/internal/errutil"
	"github.com/pkg/errors"
)

type Key int

const (
	BaseValue Key = iota
	MultiplierValue
	Zhuang
	MultipleZhuang
	Flower
	Wind
	Gong
	DarkGong
	GeneralEye
	Sister
	LaoShao
	FlowerSeat
	WindWind
	WindSeat
	ZFB
	FlowerWindSeatAddOn
	DoorClear
	DoorClearZimo
	SisterPong
	ThreeSisterPong
	MyselfMo
	FakeSolo
	DoublePong
	RealSolo
	LightFourTurtle
	DarkFourTurtle
	PingHu
	LessOneDoor
	BreakWaist
	FiveDoor
	ThreeSister
	BanGao
	TwoBanGao
	ThreeBanGao
	TwoDarkPong
	ThreeDarkPong
	FourDarkPong
	FiveDarkPong
	FiveDarkPongZimo
	SameBuBuGao
	MixedBuBuGao
	LightMixedDragon
	DarkMixedDragon
	LightSameDragon
	DarkSameDragon
	Small3Wind
	Big3Wind
	DuiDuiHu
	SameHouseWithFan
	Small3ZFB
	LiGu
	SevenFlower
	EightFlower
	SixteenBD
	ThreeNumbersFan
	Big3ZFB
	Small4Wind
	TwoNumbersFan
	ThreeNumbersNoFan
	AllSameHouse
	ThirteenWaist
	Big4Wind
	OneNineWithFan
	TwoNumbersNoFan
	OnlyFan
	OnlyOneNine
	ExplodeHu
	// FlowerWindSeatAddOnLegacy is the old spelling of FlowerWindSeatAddOn
	// still found in exported templates.
	FlowerWindSeatAddOnLegacy
	NoZifa
	NoZifaPingHu

	// Count is the size of the vocabulary.
	Count int = iota
)

type info struct {
	name  string
	label string
	def   float64
}

var infos = [Count]info{
	BaseValue:                 {"base_value", "底", 0},
	MultiplierValue:           {"multiplier_value", "倍數", 1},
	Zhuang:                    {"zhuang_value", "莊家", 2},
	MultipleZhuang:            {"multiple_zhuang_value", "連莊", 2},
	Flower:                    {"flower_value", "花", 1},
	Wind:                      {"wind_value", "風", 1},
	Gong:                      {"gong_value", "槓", 1},
	DarkGong:                  {"dark_gong_value", "暗槓", 2},
	GeneralEye:                {"general_eye_value", "將眼", 1},
	Sister:                    {"sister_value", "姊妹/二相逢", 1},
	LaoShao:                   {"lao_shao_value", "老少", 1},
	FlowerSeat:                {"flower_seat_value", "花位", 1},
	WindWind:                  {"wind_wind_value", "正圈", 1},
	WindSeat:                  {"wind_seat_value", "正位", 1},
	ZFB:                       {"zfb_value", "中發白", 2},
	FlowerWindSeatAddOn:       {"flower_wind_seat_value_add_on", "正花正位", 1},
	DoorClear:                 {"door_clear_value", "門清", 3},
	DoorClearZimo:             {"door_clear_zimo_value", "門清自摸", 5},
	SisterPong:                {"sister_pong_value", "姊妹碰", 2},
	ThreeSisterPong:           {"three_sister_pong_value", "三姊妹碰", 5},
	MyselfMo:                  {"myself_mo_value", "自摸", 1},
	FakeSolo:                  {"fake_solo_value", "假獨", 1},
	DoublePong:                {"double_pong_value", "對碰", 1},
	RealSolo:                  {"real_solo_value", "獨獨", 2},
	LightFourTurtle:           {"light_four_turtle_value", "明四歸一", 3},
	DarkFourTurtle:            {"dark_four_turtle_value", "暗四歸一", 5},
	PingHu:                    {"ping_hu_value", "平胡", 5},
	LessOneDoor:               {"less_one_door_value", "缺一門", 5},
	BreakWaist:                {"break_waist_value", "斷腰/么", 5},
	FiveDoor:                  {"five_door_value", "五門齊", 5},
	ThreeSister:               {"three_sister_value", "三姊妹/三相逢", 5},
	BanGao:                    {"ban_gao_value", "般高", 2},
	TwoBanGao:                 {"two_ban_gao_value", "兩般高", 10},
	ThreeBanGao:               {"three_ban_gao_value", "三般高", 20},
	TwoDarkPong:               {"two_dark_pong_value", "二暗刻", 3},
	ThreeDarkPong:             {"three_dark_pong_value", "三暗刻", 10},
	FourDarkPong:              {"four_dark_pong_value", "四暗刻", 30},
	FiveDarkPong:              {"five_dark_pong_value", "五暗刻", 80},
	FiveDarkPongZimo:          {"five_dark_pong_zimo_value", "坎坎胡", 100},
	SameBuBuGao:               {"same_bu_bu_gao_value", "清步步高", 10},
	MixedBuBuGao:              {"mixed_bu_bu_gao_value", "混步步高", 5},
	LightMixedDragon:          {"light_mixed_dragon_value", "明雜龍", 5},
	DarkMixedDragon:           {"dark_mixed_dragon_value", "暗雜龍", 10},
	LightSameDragon:           {"light_same_dragon_value", "明清龍", 10},
	DarkSameDragon:            {"dark_same_dragon_value", "暗清龍", 20},
	Small3Wind:                {"small_3_wind_value", "小三風", 15},
	Big3Wind:                  {"big_3_wind_value", "大三風", 30},
	DuiDuiHu:                  {"dui_dui_hu_value", "對對胡", 30},
	SameHouseWithFan:          {"same_house_with_fan_value", "混一色", 30},
	Small3ZFB:                 {"small_3_zfb_value", "小三元", 30},
	LiGu:                      {"li_gu_value", "嚦咕嚦咕", 40},
	SevenFlower:               {"seven_flower_value", "七花", 20},
	EightFlower:               {"eight_flower_value", "八花", 40},
	SixteenBD:                 {"sixteenbd_value", "16不搭", 40},
	ThreeNumbersFan:           {"three_numbers_fan_value", "三数 有番子", 40},
	Big3ZFB:                   {"big_3_zfb_value", "大三元", 60},
	Small4Wind:                {"small_4_wind_value", "小四喜", 60},
	TwoNumbersFan:             {"two_numbers_fan_value", "兩数 有番子", 80},
	ThreeNumbersNoFan:         {"three_numbers_no_fan_value", "三数 無番子", 80},
	AllSameHouse:              {"all_same_house_value", "清一色", 80},
	ThirteenWaist:             {"thirteen_waist_value", "13么/腰", 80},
	Big4Wind:                  {"big_4_wind_value", "大四喜", 80},
	OneNineWithFan:            {"one_nine_with_fan_value", "混么九", 80},
	TwoNumbersNoFan:           {"two_numbers_no_fan_value", "兩数 無番子", 100},
	OnlyFan:                   {"only_fan_value", "全番子", 100},
	OnlyOneNine:               {"only_one_nine_value", "清么九", 100},
	ExplodeHu:                 {"explode_hu_value", "炸胡", -50},
	FlowerWindSeatAddOnLegacy: {"flower_wind_seat_value_add_on_value", "正花正位", 1},
	NoZifa:                    {"no_zifa_value", "無字無花", 5},
	NoZifaPingHu:              {"no_zifa_ping_hu_value", "無字花大平胡", 12},
}

var byName = func() map[string]Key {
	m := make(map[string]Key, Count)
	for k := Key(0); int(k) < Count; k++ {
		m[infos[k].name] = k
	}
	return m
}()

func (k Key) Valid() bool { return k >= 0 && int(k) < Count }

// String is the wire name used by templates, e.g. "dui_dui_hu_value".
func (k Key) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return infos[k].name
}

// Label is the table-side name printed in score breakdowns.
func (k Key) Label() string {
	if !k.Valid() {
		return ""
	}
	return infos[k].label
}

func (k Key) Default() float64 {
	if !k.Valid() {
		return 0
	}
	return infos[k].def
}

func (k Key) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Key) UnmarshalText(text []byte) error {
	v, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseKey resolves a wire name. Unknown names are errors so typos in a
// template never turn into silently dead configuration.
func ParseKey(name string) (Key, error) {
	if k, ok := byName[name]; ok {
		return k, nil
	}
	return -1, errors.Wrapf(errutil.ErrUnknownRuleKey, "%q", name)
}

// Keys lists the vocabulary in its canonical order.
func Keys() []Key {
	keys := make([]Key, Count)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}
