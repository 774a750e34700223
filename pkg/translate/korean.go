package translate

// Korean returns the built-in table of short Korean translations. The caller
// owns the returned map.
func Korean() Table {
	return Table{
		// emotion
		"ドキドキ": "두근두근",
		"ワクワク": "설레는, 두근두근",
		"イライラ": "짜증나는, 초조한",
		"ムカムカ": "울렁거리는, 화나는",
		"ビクビク": "벌벌 떨리는",
		"ソワソワ": "안절부절못하는",
		"ウキウキ": "들뜬, 신나는",
		"メソメソ": "훌쩍훌쩍 우는",
		"シクシク": "흐느끼는",
		"ゲラゲラ": "껄껄 웃는",
		"ニコニコ": "싱글벙글, 방긋방긋",
		"ニヤニヤ": "히죽히죽",
		"プンプン": "뿌리뿌리 화난",
		"ガミガミ": "잔소리하는",

		// state and appearance
		"ピカピカ": "반짝반짝",
		"キラキラ": "반짝반짝, 빛나는",
		"ツルツル": "매끈매끈",
		"ザラザラ": "까끌까끌, 거친",
		"フワフワ": "푹신푹신, 폭신폭신",
		"モチモチ": "쫄깃쫄깃",
		"サラサラ": "보슬보슬, 술술",
		"ベタベタ": "끈적끈적",
		"ネバネバ": "끈적끈적, 찐득찐득",
		"カチカチ": "딱딱한",
		"グニャグニャ": "물렁물렁",
		"ボロボロ": "너덜너덜",
		"ビショビショ": "흠뻑 젖은",
		"カラカラ": "바싹 마른",

		// motion
		"ゆっくり": "천천히",
		"のろのろ": "느릿느릿",
		"テキパキ": "척척, 재빠르게",
		"バタバタ": "바쁘게 뛰어다니는",
		"ウロウロ": "어슬렁어슬렁",
		"ブラブラ": "빈둥빈둥, 어슬렁",
		"グルグル": "빙글빙글",
		"クルクル": "빙글빙글",
		"ヨロヨロ": "비틀비틀",
		"フラフラ": "휘청휘청",
		"ドタバタ": "쿵쿵 뛰어다니는",

		// sounds
		"ザーザー": "쏴아쏴아 (비)",
		"シトシト": "부슬부슬 (비)",
		"ポツポツ": "뚝뚝 (빗방울)",
		"ゴロゴロ": "우르릉 (천둥), 데굴데굴",
		"ガタガタ": "덜컹덜컹",
		"カタカタ": "달그락달그락",
		"ドンドン": "쿵쿵, 둥둥",
		"バンバン": "탕탕, 빵빵",
		"パチパチ": "짝짝 (박수)",
		"ガチャガチャ": "철커덕철커덕",
		"チリンチリン": "딸랑딸랑",
		"ピンポン": "띵동",
		"ワンワン": "멍멍",
		"ニャーニャー": "야옹야옹",
		"コケコッコー": "꼬끼오",
		"ブーブー": "부릉부릉, 꿀꿀",
		"モーモー": "음메",
		"チュンチュン": "짹짹",

		// eating
		"パクパク": "냠냠, 야금야금",
		"モグモグ": "오물오물, 냠냠",
		"ガツガツ": "게걸스럽게",
		"ゴクゴク": "꿀꺽꿀꺽",
		"チビチビ": "조금씩 홀짝",
		"バリバリ": "바삭바삭, 우적우적",
		"サクサク": "바삭바삭",
		"カリカリ": "바삭바삭, 아삭아삭",

		// body
		"グッスリ": "푹, 깊이 (잠)",
		"ウトウト": "꾸벅꾸벅 (졸림)",
		"クタクタ": "녹초가 된",
		"ヘトヘト": "기진맥진",
		"ペコペコ": "배고픈, 꾸벅꾸벅",
		"ムシムシ": "후덥지근한",
		"ジメジメ": "눅눅한, 축축한",
		"ポカポカ": "따스한, 포근한",
		"ヒンヤリ": "서늘한",
		"ゾクゾク": "오싹오싹, 소름끼치는",
		"ガクガク": "덜덜 떨리는",
		"ブルブル": "부들부들 떨리는",

		// general
		"あっさり": "담백한, 싱거운, 쉽게",
		"こってり": "진한, 기름진",
		"さっぱり": "산뜻한, 깔끔한",
		"しっかり": "확실히, 단단히",
		"すっきり": "상쾌한, 개운한",
		"はっきり": "확실히, 분명히",
		"ぼんやり": "멍하니, 희미하게",
		"うっかり": "깜빡, 무심코",
		"がっかり": "실망한",
		"びっくり": "깜짝 놀란",
		"うんざり": "질린, 지겨운",
		"げっそり": "수척해진",
		"ぐっすり": "푹 (잠)",
		"こっそり": "몰래, 슬쩍",
		"そっくり": "꼭 닮은, 그대로",
		"たっぷり": "듬뿍, 충분히",
		"ぴったり": "딱 맞는",
		"ゆったり": "여유로운, 느긋한",
	}
}
