package web

const templatesHTML = `
{{define "top"}}<!doctype html>
<html lang="ko">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta name="theme-color" content="#0a0a0a">
  <meta name="apple-mobile-web-app-capable" content="yes">
  <meta name="apple-mobile-web-app-title" content="TimeWorth">
  <title>{{.Title}}</title>
  {{if .Description}}
  <meta name="description" content="{{.Description}}">
  <meta property="og:title" content="{{.Title}}">
  <meta property="og:description" content="{{.Description}}">
  {{end}}
  <style>
    * { box-sizing: border-box; }
    body { font-family: system-ui, sans-serif; margin: 0; background: #0a0a0a; color: #f5f5f5; }
    main { max-width: 28rem; margin: 0 auto; padding: 40px 20px; }
    h1 { margin: 0 0 8px 0; font-weight: 600; letter-spacing: -0.02em; }
    .sub { color: #a3a3a3; margin: 0; }
    .panel { margin-top: 32px; padding: 20px; border: 1px solid #262626; border-radius: 16px; }
    .field { margin-bottom: 18px; }
    .field label { display: block; font-size: 0.9em; color: #d4d4d4; margin-bottom: 6px; }
    .field input[type="text"] { width: 100%; padding: 12px 16px; font-size: 1.1em; color: #f5f5f5; background: #171717; border: 1px solid #262626; border-radius: 12px; outline: none; }
    .field input:focus { border-color: #525252; }
    .row { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; }
    .hint { color: #737373; font-size: 0.75em; margin-top: 4px; }
    .check { display: flex; gap: 8px; align-items: center; font-size: 0.9em; color: #d4d4d4; }
    .result { margin-top: 8px; padding: 20px; border-radius: 16px; background: #171717; }
    .result .k { font-size: 0.85em; color: #a3a3a3; }
    .result .amount { margin-top: 4px; font-size: 2.2em; font-weight: 600; letter-spacing: -0.02em; }
    .result .extra { margin-top: 6px; color: #d4d4d4; }
    .actions { display: grid; grid-template-columns: 1fr 1fr; gap: 8px; margin-top: 16px; }
    .btn { display: block; padding: 12px 16px; text-align: center; font-size: 0.9em; font-weight: 600; border-radius: 12px; border: 1px solid #262626; background: #0a0a0a; color: #f5f5f5; text-decoration: none; cursor: pointer; }
    .btn.primary { background: #f5f5f5; color: #0a0a0a; border-color: #f5f5f5; }
    .btn[aria-disabled="true"] { opacity: 0.4; pointer-events: none; }
    .card { margin-top: 24px; padding: 24px; border: 1px solid #262626; border-radius: 24px; background: linear-gradient(#171717, #0a0a0a); }
    .card .brand { font-size: 0.75em; color: #a3a3a3; letter-spacing: 0.08em; }
    .card .amount { margin-top: 12px; font-size: 3em; font-weight: 600; letter-spacing: -0.02em; }
    .tiles { display: grid; grid-template-columns: repeat(3, 1fr); gap: 8px; margin-top: 16px; }
    .tile { padding: 12px; border: 1px solid #262626; border-radius: 16px; background: #0a0a0a; }
    .tile .k { font-size: 0.75em; color: #a3a3a3; }
    .tile .v { margin-top: 4px; font-weight: 600; }
    .card .foot { display: flex; justify-content: space-between; margin-top: 20px; font-size: 0.75em; color: #737373; }
    .amounts { display: grid; grid-template-columns: repeat(3, 1fr); gap: 8px; margin-top: 12px; }
    .amounts .btn.active { background: #f5f5f5; color: #0a0a0a; }
    .toast { position: fixed; left: 50%; top: 24px; transform: translateX(-50%); width: 92%; max-width: 28rem; padding: 12px 16px; border: 1px solid #262626; border-radius: 16px; background: rgba(10,10,10,0.95); font-size: 0.9em; }
    footer { margin-top: 24px; color: #737373; font-size: 0.75em; }
  </style>
</head>
<body>
<main>
{{end}}

{{define "bottom"}}
  <div id="toast" class="toast" role="status" hidden></div>
  <footer>* 로그인/추적 없음. 입력값은 저장하지 않아요. · timeworth v{{.Version}}</footer>
</main>
<script>
(function() {
  var toastEl = document.getElementById('toast');
  var toastTimer = null;
  window.twToast = function(msg) {
    toastEl.textContent = msg;
    toastEl.hidden = false;
    if (toastTimer) window.clearTimeout(toastTimer);
    toastTimer = window.setTimeout(function() { toastEl.hidden = true; }, 2200);
  };
  window.twCopy = function(text, ok, fail) {
    if (!navigator.clipboard) { window.twToast(fail); return Promise.resolve(false); }
    return navigator.clipboard.writeText(text).then(
      function() { window.twToast(ok); return true; },
      function() { window.twToast(fail); return false; });
  };
})();
</script>
</body>
</html>
{{end}}

{{define "index"}}{{template "top" .}}
  <header>
    <h1>내 시간은 얼마일까?</h1>
    <p class="sub">시급과 시간을 입력하면 바로 금액이 계산돼요.</p>
  </header>

  <form id="calc" class="panel" method="POST" action="/calc">
    <div class="field">
      <label for="wage">시급 (원)</label>
      <input id="wage" name="wage" type="text" inputmode="numeric" placeholder="예: 15,000" value="{{.Wage}}" autocomplete="off">
    </div>
    <div class="row">
      <div class="field">
        <label for="h">시간</label>
        <input id="h" name="h" type="text" inputmode="numeric" placeholder="예: 2" value="{{.Hours}}" autocomplete="off">
      </div>
      <div class="field">
        <label for="m">분 (0–59)</label>
        <input id="m" name="m" type="text" inputmode="numeric" placeholder="예: 30" value="{{.Minutes}}" autocomplete="off">
        <div class="hint">* 59분 초과 입력 시 자동으로 59분 처리돼요 (현재: <span id="safe-m">{{.EffectiveMinutes}}</span>분).</div>
      </div>
    </div>
    <div class="field">
      <label class="check"><input id="holiday" name="holiday" type="checkbox" value="1"{{if .Holiday}} checked{{end}}> 주휴수당 포함 (근사치)</label>
    </div>
    <noscript><button class="btn primary" type="submit">계산하기</button></noscript>

    <div class="result">
      <div class="k">결과</div>
      <div id="pay" class="amount">{{.PayDisplay}}</div>
      <div id="holiday-row" class="extra"{{if not .HolidayDisplay}} hidden{{end}}>주휴 포함: <span id="holiday-pay">{{.HolidayDisplay}}</span></div>
      <div class="hint">Your time is not free.</div>
    </div>

    <div class="actions">
      <a id="card-link" class="btn" href="{{if .CardURL}}{{.CardURL}}{{else}}#{{end}}"{{if not .HasResult}} aria-disabled="true"{{end}}>결과 카드 보기</a>
      <button id="share" class="btn primary" type="button" data-text="{{.ShareText}}" data-url="{{.ShareURL}}"{{if not .HasResult}} aria-disabled="true"{{end}}>공유하기</button>
    </div>
    <a class="btn" style="margin-top:8px" href="/donate">후원하기 ☕</a>
  </form>

<script>
(function() {
  var form = document.getElementById('calc');
  var wage = document.getElementById('wage');
  var hours = document.getElementById('h');
  var minutes = document.getElementById('m');
  var holiday = document.getElementById('holiday');
  var payEl = document.getElementById('pay');
  var safeM = document.getElementById('safe-m');
  var holidayRow = document.getElementById('holiday-row');
  var holidayPay = document.getElementById('holiday-pay');
  var cardLink = document.getElementById('card-link');
  var shareBtn = document.getElementById('share');
  var seq = 0;

  function digits(s) { return (s || '').replace(/[^0-9]/g, ''); }

  function params() {
    var q = new URLSearchParams();
    if (digits(wage.value)) q.set('wage', digits(wage.value));
    if (digits(hours.value)) q.set('h', digits(hours.value));
    if (digits(minutes.value)) q.set('m', digits(minutes.value));
    if (holiday.checked) q.set('holiday', '1');
    return q;
  }

  function setEnabled(el, on) {
    if (on) el.removeAttribute('aria-disabled'); else el.setAttribute('aria-disabled', 'true');
  }

  function update() {
    hours.value = digits(hours.value);
    minutes.value = digits(minutes.value);
    var q = params();
    var mine = ++seq;
    fetch('/api/pay?' + q.toString(), { headers: { 'Accept': 'application/json' } })
      .then(function(r) { return r.json(); })
      .then(function(res) {
        if (mine !== seq) return;
        wage.value = res.wageDisplay;
        payEl.textContent = res.payDisplay;
        safeM.textContent = res.effectiveMinutes;
        holidayPay.textContent = res.holidayDisplay || '';
        holidayRow.hidden = !res.holidayDisplay;
        cardLink.href = res.cardUrl || '#';
        setEnabled(cardLink, !!res.cardUrl);
        setEnabled(shareBtn, !!res.cardUrl);
        shareBtn.dataset.text = res.shareText;
        shareBtn.dataset.url = res.shareUrl || '';
        var qs = q.toString();
        history.replaceState(null, '', qs ? '/?' + qs : '/');
      })
      .catch(function() {});
  }

  [wage, hours, minutes].forEach(function(el) { el.addEventListener('input', update); });
  holiday.addEventListener('change', update);
  form.addEventListener('submit', function(e) { e.preventDefault(); update(); });

  shareBtn.addEventListener('click', function() {
    var text = shareBtn.dataset.text || '';
    var url = shareBtn.dataset.url || '';
    var fallback = function() {
      window.twCopy(url ? text + '\n' + url : text,
        '링크 복사됨 ✅ 원하는 곳에 붙여넣기만 하면 돼!',
        '복사 실패 😭 길게 눌러서 직접 복사해줘.');
    };
    if (!navigator.share) { fallback(); return; }
    navigator.share({ title: 'TimeWorth', text: text, url: url }).catch(fallback);
  });
})();
</script>
{{template "bottom" .}}{{end}}

{{define "card"}}{{template "top" .}}
  <header>
    <h1>결과 카드</h1>
    <p class="sub">이 화면을 스크린샷 해서 스토리에 올리면 끝.</p>
  </header>

  <div class="card">
    <div class="brand">TIMEWORTH</div>
    <div class="amount">{{.Pay}}</div>
    <div class="tiles">
      <div class="tile"><div class="k">시급</div><div class="v">{{.Wage}}</div></div>
      <div class="tile"><div class="k">시간</div><div class="v">{{.Hours}}</div></div>
      <div class="tile"><div class="k">분</div><div class="v">{{.Minutes}}</div></div>
    </div>
    <div class="foot"><span>Your time is not free.</span><span>timeworth</span></div>
  </div>

  <a class="btn" style="margin-top:24px" href="/">계산 화면으로 돌아가기</a>
{{template "bottom" .}}{{end}}

{{define "donate"}}{{template "top" .}}
  <header>
    <h1>후원하기 ☕</h1>
    <p class="sub">광고 없이 유지하고 기능을 더 만들 수 있게 도와줘. (선택)</p>
  </header>

  <section class="panel">
    <div class="result">
      <div class="k">추천 금액</div>
      <div class="amounts">
        {{range .Amounts}}<a class="btn{{if .Active}} active{{end}}" href="/donate?amount={{.Value}}">{{.Label}}</a>{{end}}
      </div>
      <p class="hint">메모/받는 분에 TimeWorth 라고 적어주면 누가 후원했는지 확인하기 쉬워.</p>
      <p class="hint">{{.Memo}}</p>
      <button id="copy-memo" class="btn" style="margin-top:12px;width:100%" type="button" data-memo="{{.Memo}}">송금 메모 문구 복사</button>
    </div>

    <div class="result" style="margin-top:16px">
      <div class="k">계좌</div>
      <div class="extra">{{.AccountLine}}</div>
      <button id="copy-account" class="btn primary" style="margin-top:12px;width:100%" type="button" data-account="{{.Account}}">계좌번호 복사</button>
      <p class="hint">복사 후 은행앱에서 붙여넣기 → {{.Selected}} 송금하면 끝.</p>
    </div>

    <a class="btn" style="margin-top:16px" href="/">계산하러 돌아가기</a>
  </section>
  <p class="hint">* 이 페이지는 안내용이고 결제 정보를 저장하지 않아.</p>

<script>
(function() {
  var btn = document.getElementById('copy-account');
  btn.addEventListener('click', function() {
    window.twCopy(btn.dataset.account,
      '계좌번호 복사됨 ✅ 은행앱에 붙여넣기만 하면 돼!',
      '복사 실패 😭 계좌번호를 길게 눌러서 직접 복사해줘.');
  });
  var memo = document.getElementById('copy-memo');
  memo.addEventListener('click', function() {
    window.twCopy(memo.dataset.memo,
      '후원 문구 복사됨 ✅ 송금 메모에 붙여넣으면 끝!',
      "복사 실패 😭 메모에 'TimeWorth'만 적어줘도 돼.");
  });
})();
</script>
{{template "bottom" .}}{{end}}
`
